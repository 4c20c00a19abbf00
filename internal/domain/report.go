package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopSellersLimit é a quantidade máxima de vendedores no ranking do relatório administrativo
const TopSellersLimit = 5

// SalesSummary é o resultado da agregação das vendas de um vendedor em uma data
type SalesSummary struct {
	SalesCount      int             `json:"sales_count"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalCommission decimal.Decimal `json:"total_commission"`
}

type TopSeller struct {
	Name       string          `json:"name"`
	SalesCount int             `json:"sales_count"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
}

func (t TopSeller) MarshalJSON() ([]byte, error) {
	type Alias TopSeller
	return json.Marshal(struct {
		Alias
		Amount     string `json:"amount"`
		Commission string `json:"commission"`
	}{Alias(t), formatMoney(t.Amount), formatMoney(t.Commission)})
}

// DailyReport é a fotografia de uma execução do relatório diário (não persistida)
type DailyReport struct {
	Date            time.Time               `json:"date"`
	Sellers         map[int64]*SalesSummary `json:"-"`
	TotalSales      int                     `json:"total_sales"`
	TotalAmount     decimal.Decimal         `json:"total_amount"`
	TotalCommission decimal.Decimal         `json:"total_commission"`
	TopSellers      []TopSeller             `json:"top_sellers"`
}

func (r DailyReport) MarshalJSON() ([]byte, error) {
	type Alias DailyReport
	return json.Marshal(struct {
		Alias
		TotalAmount     string `json:"total_amount"`
		TotalCommission string `json:"total_commission"`
	}{Alias(r), formatMoney(r.TotalAmount), formatMoney(r.TotalCommission)})
}

type CommissionReportSeller struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommissionReport é a confirmação devolvida no reenvio manual do e-mail de comissão
type CommissionReport struct {
	Seller          CommissionReportSeller `json:"seller"`
	Date            string                 `json:"date"`
	SalesCount      int                    `json:"sales_count"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	TotalCommission decimal.Decimal        `json:"total_commission"`
}

func (r CommissionReport) MarshalJSON() ([]byte, error) {
	type Alias CommissionReport
	return json.Marshal(struct {
		Alias
		TotalAmount     string `json:"total_amount"`
		TotalCommission string `json:"total_commission"`
	}{Alias(r), formatMoney(r.TotalAmount), formatMoney(r.TotalCommission)})
}

type ResendCommissionEmailRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
