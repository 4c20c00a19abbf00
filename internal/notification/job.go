package notification

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

type JobKind string

const (
	KindSellerReport JobKind = "report.seller.daily"
	KindAdminReport  JobKind = "report.admin.daily"
)

// Job é uma unidade de trabalho imutável entregue à fila
type Job interface {
	Kind() JobKind
	Recipient() string
	Subject() string
}

// Enqueuer entrega jobs para processamento assíncrono.
// Retorna erro apenas quando a fila está indisponível; a entrega do e-mail não é observada.
type Enqueuer interface {
	Enqueue(ctx context.Context, job Job) error
}

// JobHandler processa um job já retirado da fila
type JobHandler interface {
	Handle(ctx context.Context, job Job) error
}

// SellerReportJob carrega o resumo diário de um vendedor
type SellerReportJob struct {
	SellerID        int64           `json:"seller_id"`
	SellerName      string          `json:"seller_name"`
	SellerEmail     string          `json:"seller_email"`
	Date            string          `json:"date"`
	SalesCount      int             `json:"sales_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

func NewSellerReportJob(seller *domain.Seller, date string, summary domain.SalesSummary) SellerReportJob {
	return SellerReportJob{
		SellerID:        seller.ID,
		SellerName:      seller.Name,
		SellerEmail:     seller.Email,
		Date:            date,
		SalesCount:      summary.SalesCount,
		TotalAmount:     summary.TotalAmount,
		TotalCommission: summary.TotalCommission,
	}
}

func (j SellerReportJob) Kind() JobKind { return KindSellerReport }

func (j SellerReportJob) Recipient() string { return j.SellerEmail }

func (j SellerReportJob) Subject() string {
	return fmt.Sprintf("Relatório Diário de Vendas - %s", j.Date)
}

// AdminReportJob carrega os totais do dia e o ranking dos vendedores
type AdminReportJob struct {
	AdminEmail      string             `json:"admin_email"`
	Date            string             `json:"date"`
	TotalSales      int                `json:"total_sales"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	TotalCommission decimal.Decimal    `json:"total_commission"`
	TopSellers      []domain.TopSeller `json:"top_sellers"`
}

func NewAdminReportJob(adminEmail, date string, report *domain.DailyReport) AdminReportJob {
	topSellers := make([]domain.TopSeller, len(report.TopSellers))
	copy(topSellers, report.TopSellers)

	return AdminReportJob{
		AdminEmail:      adminEmail,
		Date:            date,
		TotalSales:      report.TotalSales,
		TotalAmount:     report.TotalAmount,
		TotalCommission: report.TotalCommission,
		TopSellers:      topSellers,
	}
}

func (j AdminReportJob) Kind() JobKind { return KindAdminReport }

func (j AdminReportJob) Recipient() string { return j.AdminEmail }

func (j AdminReportJob) Subject() string {
	return fmt.Sprintf("Relatório Administrativo de Vendas - %s", j.Date)
}
