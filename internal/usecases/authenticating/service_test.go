package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	return NewService(userRepo, &config.Config{SecretKey: "segredo-de-teste"}), userRepo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.RegisterRequest
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "Cadastro com senha criptografada",
			req:  domain.RegisterRequest{Name: "Admin", Email: " Admin@Example.com", Password: "senha-forte"},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(nil, nil)
				userRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha-forte")))
						user.ID = 1
						return user, nil
					})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, int64(1), user.ID)
				assert.Equal(t, "admin@example.com", user.Email)
				assert.Empty(t, user.PasswordHash)
			},
		},
		{
			name: "E-mail já cadastrado",
			req:  domain.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "senha-forte"},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(&domain.User{ID: 1}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				var authErr *AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrUserAlreadyExists, authErr.Code)
			},
		},
		{
			name:  "Senha curta é erro de validação",
			req:   domain.RegisterRequest{Name: "Admin", Email: "admin@example.com", Password: "123"},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, user *domain.User, err error) {
				var verr utils.ValidationErrors
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr, "password")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newTestService(t)
			tt.setup(userRepo)

			user, err := service.Register(context.Background(), tt.req)
			tt.validate(t, user, err)
		})
	}
}

func TestService_LoginEValidateToken(t *testing.T) {
	service, userRepo := newTestService(t)

	user := &domain.User{ID: 7, Name: "Admin", Email: "admin@example.com", PasswordHash: hashed(t, "senha-forte")}
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "admin@example.com").Return(user, nil).Times(2)

	token, err := service.Login(context.Background(), "ADMIN@example.com", "senha-forte")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.UserEmail)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = service.Login(context.Background(), "admin@example.com", "errada")
	assert.True(t, IsCredentialsError(err))
}

func TestService_Login_UsuarioInexistente(t *testing.T) {
	service, userRepo := newTestService(t)
	userRepo.EXPECT().GetUserByEmail(gomock.Any(), "ninguem@example.com").Return(nil, nil)

	_, err := service.Login(context.Background(), "ninguem@example.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t)
	user := &domain.User{ID: 7, Name: "Admin", Email: "admin@example.com"}

	t.Run("Token expirado", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
		token, err := service.generateJWT(user)
		require.NoError(t, err)

		service.now = time.Now
		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Token assinado com outra chave", func(t *testing.T) {
		other := NewService(nil, &config.Config{SecretKey: "outra-chave"})
		token, err := other.generateJWT(user)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestService_GetProfile(t *testing.T) {
	t.Run("Perfil sem hash da senha", func(t *testing.T) {
		service, userRepo := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), int64(7)).Return(&domain.User{ID: 7, PasswordHash: "hash"}, nil)

		user, err := service.GetProfile(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newTestService(t)
		userRepo.EXPECT().GetUserByID(gomock.Any(), int64(7)).Return(nil, nil)

		_, err := service.GetProfile(context.Background(), 7)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Erro do banco", func(t *testing.T) {
		service, userRepo := newTestService(t)
		dbErr := errors.New("db down")
		userRepo.EXPECT().GetUserByID(gomock.Any(), int64(7)).Return(nil, dbErr)

		_, err := service.GetProfile(context.Background(), 7)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.ErrorIs(t, err, dbErr)
	})
}
