package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	MinSaleAmount = decimal.RequireFromString("0.01")
	MaxSaleAmount = decimal.RequireFromString("99999999.99")
)

type Sale struct {
	ID        int64           `json:"id"`
	SellerID  int64           `json:"seller_id"`
	Amount    decimal.Decimal `json:"amount"`
	SaleDate  time.Time       `json:"sale_date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	// Seller é carregado junto nas listagens para o cálculo da comissão
	Seller *Seller `json:"-"`
}

// Commission é derivada da taxa do vendedor e nunca é persistida
func (s *Sale) Commission(rate decimal.Decimal) decimal.Decimal {
	return CalculateCommission(s.Amount, rate)
}

// CreateSaleRequest aceita amount tanto como número (1000.00) quanto como string ("1000.00")
type CreateSaleRequest struct {
	SellerID int64           `json:"seller_id" validate:"required,gt=0"`
	Amount   decimal.Decimal `json:"amount"`
	SaleDate string          `json:"sale_date" validate:"required,datetime=2006-01-02"`
}

type SaleResponse struct {
	ID         int64           `json:"id"`
	SellerID   int64           `json:"seller_id"`
	SellerName string          `json:"seller_name"`
	Amount     decimal.Decimal `json:"amount"`
	Commission decimal.Decimal `json:"commission"`
	SaleDate   string          `json:"sale_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewSaleResponse monta a resposta da venda com a comissão calculada pela taxa atual do vendedor
func NewSaleResponse(sale *Sale, seller *Seller) *SaleResponse {
	resp := &SaleResponse{
		ID:        sale.ID,
		SellerID:  sale.SellerID,
		Amount:    sale.Amount.Round(MoneyScale),
		SaleDate:  sale.SaleDate.Format(time.DateOnly),
		CreatedAt: sale.CreatedAt,
	}

	if seller != nil {
		resp.SellerName = seller.Name
		resp.Commission = sale.Commission(seller.CommissionRate)
	}

	return resp
}

func (r SaleResponse) MarshalJSON() ([]byte, error) {
	type Alias SaleResponse
	return json.Marshal(struct {
		Alias
		Amount     string `json:"amount"`
		Commission string `json:"commission"`
	}{Alias(r), formatMoney(r.Amount), formatMoney(r.Commission)})
}

type SaleListResponse struct {
	Data       []*SaleResponse `json:"data"`
	Pagination Pagination      `json:"meta"`
}
