package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-commission-api/internal/domain"
)

// reportAccumulator acumula os totais do dia durante a iteração dos vendedores
type reportAccumulator struct {
	date            time.Time
	sellers         map[int64]*domain.SalesSummary
	totalSales      int
	totalAmount     decimal.Decimal
	totalCommission decimal.Decimal
	candidates      []domain.TopSeller
}

func newReportAccumulator(date time.Time) *reportAccumulator {
	return &reportAccumulator{
		date:            date,
		sellers:         make(map[int64]*domain.SalesSummary),
		totalAmount:     decimal.Zero,
		totalCommission: decimal.Zero,
	}
}

// add registra o resumo do vendedor; sem vendas ele fica fora dos totais e do ranking
func (a *reportAccumulator) add(seller *domain.Seller, summary domain.SalesSummary) {
	s := summary
	a.sellers[seller.ID] = &s

	if summary.SalesCount == 0 {
		return
	}

	a.totalSales += summary.SalesCount
	a.totalAmount = a.totalAmount.Add(summary.TotalAmount)
	a.totalCommission = a.totalCommission.Add(summary.TotalCommission)
	a.candidates = append(a.candidates, domain.TopSeller{
		Name:       seller.Name,
		SalesCount: summary.SalesCount,
		Amount:     summary.TotalAmount,
		Commission: summary.TotalCommission,
	})
}

// report fecha o acumulador: ordena por valor (estável) e corta o ranking
func (a *reportAccumulator) report() *domain.DailyReport {
	ranked := make([]domain.TopSeller, len(a.candidates))
	copy(ranked, a.candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > domain.TopSellersLimit {
		ranked = ranked[:domain.TopSellersLimit]
	}

	return &domain.DailyReport{
		Date:            a.date,
		Sellers:         a.sellers,
		TotalSales:      a.totalSales,
		TotalAmount:     a.totalAmount,
		TotalCommission: a.totalCommission,
		TopSellers:      ranked,
	}
}
