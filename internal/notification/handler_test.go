package notification_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"github.com/vfg2006/sales-commission-api/internal/notification/mocks"
	"go.uber.org/mock/gomock"
)

func TestHandler_Render(t *testing.T) {
	handler, err := notification.NewHandler(nil, "Sales Management System")
	require.NoError(t, err)

	tests := []struct {
		name     string
		job      notification.Job
		validate func(t *testing.T, msg notification.Message)
	}{
		{
			name: "Relatório do vendedor com vendas",
			job: notification.SellerReportJob{
				SellerID:        1,
				SellerName:      "Maria Souza",
				SellerEmail:     "maria@example.com",
				Date:            "15/03/2024",
				SalesCount:      1,
				TotalAmount:     decimal.RequireFromString("1000.00"),
				TotalCommission: decimal.RequireFromString("85.00"),
			},
			validate: func(t *testing.T, msg notification.Message) {
				assert.Equal(t, "maria@example.com", msg.To)
				assert.Equal(t, "Relatório Diário de Vendas - 15/03/2024", msg.Subject)
				assert.Contains(t, msg.HTMLBody, "Maria Souza")
				assert.Contains(t, msg.HTMLBody, "1 venda<")
				assert.Contains(t, msg.HTMLBody, "R$ 1.000,00")
				assert.Contains(t, msg.HTMLBody, "R$ 85,00")
				assert.Contains(t, msg.HTMLBody, "Parabéns pelo seu desempenho!")
				assert.NotContains(t, msg.HTMLBody, "Nenhuma venda foi realizada")
			},
		},
		{
			name: "Relatório do vendedor sem vendas usa a variante vazia",
			job: notification.SellerReportJob{
				SellerID:        2,
				SellerName:      "João",
				SellerEmail:     "joao@example.com",
				Date:            "15/03/2024",
				TotalAmount:     decimal.Zero,
				TotalCommission: decimal.Zero,
			},
			validate: func(t *testing.T, msg notification.Message) {
				assert.Contains(t, msg.HTMLBody, "0 vendas")
				assert.Contains(t, msg.HTMLBody, "R$ 0,00")
				assert.Contains(t, msg.HTMLBody, "Nenhuma venda foi realizada neste dia")
				assert.NotContains(t, msg.HTMLBody, "Parabéns")
			},
		},
		{
			name: "Relatório administrativo lista o ranking em ordem",
			job: notification.AdminReportJob{
				AdminEmail:      "admin@example.com",
				Date:            "15/03/2024",
				TotalSales:      3,
				TotalAmount:     decimal.RequireFromString("1500.00"),
				TotalCommission: decimal.RequireFromString("127.50"),
				TopSellers: []domain.TopSeller{
					{Name: "Ana", SalesCount: 2, Amount: decimal.RequireFromString("1000.00"), Commission: decimal.RequireFromString("85.00")},
					{Name: "Bruno", SalesCount: 1, Amount: decimal.RequireFromString("500.00"), Commission: decimal.RequireFromString("42.50")},
				},
			},
			validate: func(t *testing.T, msg notification.Message) {
				assert.Equal(t, "admin@example.com", msg.To)
				assert.Equal(t, "Relatório Administrativo de Vendas - 15/03/2024", msg.Subject)
				assert.Contains(t, msg.HTMLBody, "Top Vendedores do Dia")
				assert.Contains(t, msg.HTMLBody, "R$ 1.500")
				assert.Contains(t, msg.HTMLBody, "Comissão: R$ 42,50")
				assert.Less(t, strings.Index(msg.HTMLBody, "Ana"), strings.Index(msg.HTMLBody, "Bruno"))
			},
		},
		{
			name: "Relatório administrativo sem vendas",
			job: notification.AdminReportJob{
				AdminEmail:      "admin@example.com",
				Date:            "15/03/2024",
				TotalAmount:     decimal.Zero,
				TotalCommission: decimal.Zero,
			},
			validate: func(t *testing.T, msg notification.Message) {
				assert.Contains(t, msg.HTMLBody, "Nenhuma venda foi registrada neste dia")
				assert.NotContains(t, msg.HTMLBody, "Top Vendedores do Dia")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := handler.Render(tt.job)
			require.NoError(t, err)
			tt.validate(t, msg)
		})
	}
}

func TestHandler_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mocks.NewMockMailer(ctrl)

	handler, err := notification.NewHandler(mockMailer, "Sales Management System")
	require.NoError(t, err)

	job := notification.SellerReportJob{
		SellerID:        1,
		SellerName:      "Maria",
		SellerEmail:     "maria@example.com",
		Date:            "15/03/2024",
		TotalAmount:     decimal.Zero,
		TotalCommission: decimal.Zero,
	}

	t.Run("Envia o e-mail renderizado para o destinatário", func(t *testing.T) {
		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, "maria@example.com", msg.To)
				assert.NotEmpty(t, msg.HTMLBody)
				return nil
			})

		assert.NoError(t, handler.Handle(context.Background(), job))
	})

	t.Run("Falha do transporte é devolvida para a fila", func(t *testing.T) {
		mockMailer.EXPECT().
			Send(gomock.Any(), gomock.Any()).
			Return(errors.New("smtp indisponível"))

		err := handler.Handle(context.Background(), job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "smtp indisponível")
	})
}
