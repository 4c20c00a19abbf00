package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
		validate   func(t *testing.T, r *http.Request)
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/v1/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Sem header Authorization",
			path:       "/v1/sellers",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Header sem prefixo Bearer",
			path:       "/v1/sellers",
			header:     "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/sellers",
			header: "Bearer abc",
			validator: fakeValidator{
				err: authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Erro genérico de token",
			path:       "/v1/sellers",
			header:     "Bearer abc",
			validator:  fakeValidator{err: errors.New("boom")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Token válido grava as claims no contexto",
			path:       "/v1/sellers",
			header:     "Bearer abc",
			validator:  fakeValidator{claims: &domain.Claims{UserID: 7}},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, r *http.Request) {
				claims, ok := UserFromContext(r.Context())
				require.True(t, ok)
				assert.Equal(t, int64(7), claims.UserID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received *http.Request
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				received = r
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				require.NotNil(t, received)
				tt.validate(t, received)
			}
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Preflight de origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/sellers", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem desconhecida não recebe headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/sellers", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falha inesperada")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
	assert.NotEmpty(t, rec.Header().Get(correlationHeader))
}

func TestMetrics(t *testing.T) {
	handler := Metrics("/v1/sellers/:id")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/sellers/9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
