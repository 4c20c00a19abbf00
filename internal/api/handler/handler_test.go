package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/api/handler/router"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/sales-commission-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	reportingMocks "github.com/vfg2006/sales-commission-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
	sellingMocks "github.com/vfg2006/sales-commission-api/internal/usecases/selling/mocks"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/middleware"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
	"go.uber.org/mock/gomock"
)

func newTestRouter(routes ...[]router.Route) http.Handler {
	configs := make([]router.ConfigRouter, 0, len(routes))
	for _, r := range routes {
		configs = append(configs, router.WithRoutes(r...))
	}
	return router.New(configs...)
}

func doRequest(h http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSellerHandlers(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Lista vendedores com paginação padrão",
			method: http.MethodGet,
			path:   "/v1/sellers",
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				manager.EXPECT().ListSellers(gomock.Any(), 1, utils.DefaultPerPage).Return(&domain.SellerListResponse{
					Data:       []*domain.Seller{{ID: 1, Name: "Ana", Email: "ana@example.com"}},
					Pagination: domain.NewPagination(1, utils.DefaultPerPage, 1),
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"current_page":1`)
				assert.Contains(t, rec.Body.String(), `"name":"Ana"`)
			},
		},
		{
			name:   "Cadastra vendedor",
			method: http.MethodPost,
			path:   "/v1/sellers",
			body:   `{"name":"Ana","email":"ana@example.com"}`,
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				manager.EXPECT().
					CreateSeller(gomock.Any(), domain.CreateSellerRequest{Name: "Ana", Email: "ana@example.com"}).
					Return(&domain.Seller{ID: 10, Name: "Ana", Email: "ana@example.com", CommissionRate: domain.DefaultCommissionRate}, nil)
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"id":10`)
				assert.Contains(t, rec.Body.String(), `"commission_rate":"8.50"`)
			},
		},
		{
			name:   "Erros de validação retornam 422 com mensagens por campo",
			method: http.MethodPost,
			path:   "/v1/sellers",
			body:   `{"name":"Ana","email":"ana@example.com"}`,
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				manager.EXPECT().CreateSeller(gomock.Any(), gomock.Any()).
					Return(nil, utils.ValidationErrors{"email": {"O e-mail informado já está em uso."}})
			},
			wantStatus: http.StatusUnprocessableEntity,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrValidationFailed, body.Code)
				assert.Contains(t, rec.Body.String(), "O e-mail informado já está em uso.")
			},
		},
		{
			name:       "Corpo malformado não chega ao serviço",
			method:     http.MethodPost,
			path:       "/v1/sellers",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Remove vendedor",
			method: http.MethodDelete,
			path:   "/v1/sellers/4",
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				manager.EXPECT().DeleteSeller(gomock.Any(), int64(4)).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Remoção de vendedor inexistente retorna 404",
			method: http.MethodDelete,
			path:   "/v1/sellers/9",
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				manager.EXPECT().DeleteSeller(gomock.Any(), int64(9)).Return(selling.ErrSellerNotFound)
			},
			wantStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrSellerNotFound, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:       "ID não numérico é rejeitado",
			method:     http.MethodDelete,
			path:       "/v1/sellers/abc",
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Reenvia e-mail de comissão",
			method: http.MethodPost,
			path:   "/v1/sellers/3/resend-commission-email",
			body:   `{"date":"2024-03-15"}`,
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().ResendCommissionEmail(gomock.Any(), int64(3), "2024-03-15").Return(&domain.CommissionReport{
					Seller:          domain.CommissionReportSeller{ID: 3, Name: "Ana", Email: "ana@example.com"},
					Date:            "15/03/2024",
					SalesCount:      2,
					TotalAmount:     decimal.RequireFromString("1250.50"),
					TotalCommission: decimal.RequireFromString("106.29"),
				}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), "E-mail de comissão reenviado com sucesso")
				assert.Contains(t, rec.Body.String(), `"date":"15/03/2024"`)
				assert.Contains(t, rec.Body.String(), `"total_amount":"1250.50"`)
			},
		},
		{
			name:       "Reenvio sem data não chega ao serviço",
			method:     http.MethodPost,
			path:       "/v1/sellers/3/resend-commission-email",
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrValidationFailed, decodeAPIError(t, rec).Code)
				assert.Contains(t, rec.Body.String(), `"date"`)
			},
		},
		{
			name:   "Reenvio com data futura retorna 422",
			method: http.MethodPost,
			path:   "/v1/sellers/3/resend-commission-email",
			body:   `{"date":"2099-01-01"}`,
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().ResendCommissionEmail(gomock.Any(), int64(3), "2099-01-01").
					Return(nil, reporting.NewReportError(reporting.ErrFutureDate, "2099-01-01"))
			},
			wantStatus: http.StatusUnprocessableEntity,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), reporting.ErrFutureDate.Error())
			},
		},
		{
			name:   "Reenvio para vendedor inexistente retorna 404",
			method: http.MethodPost,
			path:   "/v1/sellers/99/resend-commission-email",
			body:   `{"date":"2024-03-15"}`,
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().ResendCommissionEmail(gomock.Any(), int64(99), "2024-03-15").
					Return(nil, reporting.NewReportError(reporting.ErrSellerNotFound, "vendedor 99"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "Fila indisponível no reenvio retorna 503",
			method: http.MethodPost,
			path:   "/v1/sellers/3/resend-commission-email",
			body:   `{"date":"2024-03-15"}`,
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				reporter.EXPECT().ResendCommissionEmail(gomock.Any(), int64(3), "2024-03-15").
					Return(nil, reporting.NewReportError(reporting.ErrEnqueueJob, "vendedor 3"))
			},
			wantStatus: http.StatusServiceUnavailable,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrQueueUnavailable, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Lista vendas do vendedor respeitando a página",
			method: http.MethodGet,
			path:   "/v1/sellers/3/sales?page=2",
			setup: func(manager *sellingMocks.MockManager, reporter *reportingMocks.MockReporter) {
				manager.EXPECT().ListSalesBySeller(gomock.Any(), int64(3), 2, utils.DefaultPerPage).
					Return(&domain.SaleListResponse{Data: []*domain.SaleResponse{}, Pagination: domain.NewPagination(2, utils.DefaultPerPage, 16)}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"last_page":2`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := sellingMocks.NewMockManager(ctrl)
			reporter := reportingMocks.NewMockReporter(ctrl)
			if tt.setup != nil {
				tt.setup(manager, reporter)
			}

			h := newTestRouter(Sellers(manager, reporter))
			rec := doRequest(h, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

// createdSale confere o pedido decodificado e devolve a venda registrada com comissão de 8.5%
func createdSale(t *testing.T, wantAmount string) func(context.Context, domain.CreateSaleRequest) (*domain.SaleResponse, error) {
	return func(_ context.Context, req domain.CreateSaleRequest) (*domain.SaleResponse, error) {
		assert.Equal(t, int64(1), req.SellerID)
		assert.Equal(t, "2024-03-15", req.SaleDate)
		assert.True(t, req.Amount.Equal(decimal.RequireFromString(wantAmount)), "amount = %s", req.Amount)

		return &domain.SaleResponse{
			ID:         5,
			SellerID:   req.SellerID,
			SellerName: "Ana",
			Amount:     req.Amount,
			Commission: domain.CalculateCommission(req.Amount, domain.DefaultCommissionRate),
			SaleDate:   req.SaleDate,
		}, nil
	}
}

func TestSaleHandlers(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(manager *sellingMocks.MockManager)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Registra venda com comissão calculada",
			method: http.MethodPost,
			path:   "/v1/sales",
			body:   `{"seller_id":1,"amount":"1000.00","sale_date":"2024-03-15"}`,
			setup: func(manager *sellingMocks.MockManager) {
				manager.EXPECT().CreateSale(gomock.Any(), gomock.Any()).DoAndReturn(createdSale(t, "1000.00"))
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"amount":"1000.00"`)
				assert.Contains(t, rec.Body.String(), `"commission":"85.00"`)
			},
		},
		{
			name:   "Aceita valor numérico enviado pelo frontend",
			method: http.MethodPost,
			path:   "/v1/sales",
			body:   `{"seller_id":1,"amount":1000.00,"sale_date":"2024-03-15"}`,
			setup: func(manager *sellingMocks.MockManager) {
				manager.EXPECT().CreateSale(gomock.Any(), gomock.Any()).DoAndReturn(createdSale(t, "1000.00"))
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"commission":"85.00"`)
			},
		},
		{
			name:       "Valor não numérico é rejeitado na leitura do corpo",
			method:     http.MethodPost,
			path:       "/v1/sales",
			body:       `{"seller_id":1,"amount":"mil reais","sale_date":"2024-03-15"}`,
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:   "Vendedor inexistente na venda é erro de validação",
			method: http.MethodPost,
			path:   "/v1/sales",
			body:   `{"seller_id":99,"amount":"10.00","sale_date":"2024-03-15"}`,
			setup: func(manager *sellingMocks.MockManager) {
				manager.EXPECT().CreateSale(gomock.Any(), gomock.Any()).
					Return(nil, utils.ValidationErrors{"seller_id": {"O vendedor selecionado é inválido."}})
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "Falha de banco na listagem retorna 500",
			method: http.MethodGet,
			path:   "/v1/sales?per_page=500",
			setup: func(manager *sellingMocks.MockManager) {
				manager.EXPECT().ListSales(gomock.Any(), 1, utils.MaxPerPage).Return(nil, selling.ErrDatabaseOperation)
			},
			wantStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			manager := sellingMocks.NewMockManager(ctrl)
			if tt.setup != nil {
				tt.setup(manager)
			}

			rec := doRequest(newTestRouter(Sales(manager)), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestAuthenticationHandlers(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		headers    []string
		setup      func(auth *authMocks.MockAuthenticator)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "Login retorna token",
			method: http.MethodPost,
			path:   "/v1/login",
			body:   `{"email":"admin@example.com","password":"secret123"}`,
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().Login(gomock.Any(), "admin@example.com", "secret123").Return("jwt-token", nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)
			},
		},
		{
			name:   "Credenciais inválidas retornam 401",
			method: http.MethodPost,
			path:   "/v1/login",
			body:   `{"email":"admin@example.com","password":"errada"}`,
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, body.Code)
				assert.Equal(t, authenticating.ErrInvalidCredentials.Error(), body.Message)
			},
		},
		{
			name:   "Cadastro de usuário",
			method: http.MethodPost,
			path:   "/v1/register",
			body:   `{"name":"Admin","email":"admin@example.com","password":"secret123"}`,
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().Register(gomock.Any(), domain.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "secret123"}).
					Return(&domain.User{ID: 1, Name: "Admin", Email: "admin@example.com"}, nil)
			},
			wantStatus: http.StatusCreated,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.NotContains(t, rec.Body.String(), "password")
			},
		},
		{
			name:    "Perfil do usuário autenticado",
			method:  http.MethodGet,
			path:    "/v1/me",
			headers: []string{"Authorization", "Bearer jwt-token"},
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("jwt-token").Return(&domain.Claims{UserID: 7}, nil)
				auth.EXPECT().GetProfile(gomock.Any(), int64(7)).Return(&domain.User{ID: 7, Name: "Admin"}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"id":7`)
			},
		},
		{
			name:    "Logout de usuário autenticado",
			method:  http.MethodPost,
			path:    "/v1/logout",
			headers: []string{"Authorization", "Bearer jwt-token"},
			setup: func(auth *authMocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("jwt-token").Return(&domain.Claims{UserID: 7}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"message":"Logout realizado com sucesso."}`, rec.Body.String())
			},
		},
		{
			name:       "Logout sem token é bloqueado pelo middleware",
			method:     http.MethodPost,
			path:       "/v1/logout",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Perfil sem token é bloqueado pelo middleware",
			method:     http.MethodGet,
			path:       "/v1/me",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authMocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(auth)
			}

			h := middleware.AuthMiddleware(auth)(newTestRouter(Authentication(auth)))
			rec := doRequest(h, tt.method, tt.path, tt.body, tt.headers...)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

type fakeTrigger struct {
	accept bool
	calls  int
}

func (f *fakeTrigger) TriggerManualSync(ctx context.Context) bool {
	f.calls++
	return f.accept
}

func (f *fakeTrigger) GetStatus() map[string]any {
	return map[string]any{"running": !f.accept}
}

func TestCronHandlers(t *testing.T) {
	t.Run("Execução manual aceita", func(t *testing.T) {
		trigger := &fakeTrigger{accept: true}
		rec := doRequest(newTestRouter(CronJobs(trigger)), http.MethodPost, "/v1/cron/daily-sales-report/run", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, trigger.calls)
	})

	t.Run("Execução em andamento retorna 409", func(t *testing.T) {
		trigger := &fakeTrigger{accept: false}
		rec := doRequest(newTestRouter(CronJobs(trigger)), http.MethodPost, "/v1/cron/daily-sales-report/run", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrReportRunning, decodeAPIError(t, rec).Code)
	})

	t.Run("Status agrupado pelo tipo da cron", func(t *testing.T) {
		trigger := &fakeTrigger{accept: true}
		rec := doRequest(newTestRouter(CronJobs(trigger)), http.MethodGet, "/v1/cron/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"daily-sales-report":{"running":false}`)
	})
}

func TestHealthcheck(t *testing.T) {
	h := newTestRouter(Healthcheck())

	rec := doRequest(h, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = doRequest(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
