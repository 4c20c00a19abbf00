package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

// Aggregator resume as vendas de um vendedor em um dia do calendário
type Aggregator struct {
	saleRepo repository.SaleRepository
}

func NewAggregator(saleRepo repository.SaleRepository) *Aggregator {
	return &Aggregator{saleRepo: saleRepo}
}

// Aggregate soma a comissão venda a venda, usando a taxa atual do vendedor
func (a *Aggregator) Aggregate(ctx context.Context, seller *domain.Seller, date time.Time) (domain.SalesSummary, error) {
	summary := domain.SalesSummary{
		TotalAmount:     decimal.Zero,
		TotalCommission: decimal.Zero,
	}

	if seller == nil {
		return summary, NewReportError(ErrSellerNotFound, "vendedor não informado")
	}

	day := domain.CalendarDate(date)

	sales, err := a.saleRepo.ListBySellerAndDate(ctx, seller.ID, day)
	if err != nil {
		return summary, NewSellerReportError(ErrFetchSales, seller.ID, err)
	}

	for _, sale := range sales {
		if !domain.SameDay(sale.SaleDate, day) {
			continue
		}

		summary.SalesCount++
		summary.TotalAmount = summary.TotalAmount.Add(sale.Amount)
		summary.TotalCommission = summary.TotalCommission.Add(sale.Commission(seller.CommissionRate))
	}

	return summary, nil
}
