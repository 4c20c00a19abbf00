package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/metrics"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

type Reporter interface {
	RunDailyReports(ctx context.Context, date *time.Time) (*RunResult, error)
	ResendCommissionEmail(ctx context.Context, sellerID int64, rawDate string) (*domain.CommissionReport, error)
	Location() *time.Location
}

// RunResult resume o que foi agendado em uma execução
type RunResult struct {
	Date                   time.Time           `json:"date"`
	ScheduledSellerReports int                 `json:"scheduled_seller_reports"`
	AdminReportScheduled   bool                `json:"admin_report_scheduled"`
	Report                 *domain.DailyReport `json:"report,omitempty"`
}

type Config struct {
	// AdminEmail vazio desabilita o relatório administrativo
	AdminEmail string
	Location   *time.Location
}

type Service struct {
	sellerRepo repository.SellerRepository
	aggregator *Aggregator
	enqueuer   notification.Enqueuer
	cfg        Config
	now        func() time.Time
}

func NewService(
	sellerRepo repository.SellerRepository,
	saleRepo repository.SaleRepository,
	enqueuer notification.Enqueuer,
	cfg Config,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Service{
		sellerRepo: sellerRepo,
		aggregator: NewAggregator(saleRepo),
		enqueuer:   enqueuer,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *Service) Location() *time.Location {
	return s.cfg.Location
}

// RunDailyReports agenda um relatório por vendedor ativo e o resumo administrativo.
// Sem data, usa o dia anterior no fuso configurado. A primeira falha interrompe a execução
// e o resultado parcial é devolvido junto com o erro; jobs já enfileirados permanecem na fila.
func (s *Service) RunDailyReports(ctx context.Context, date *time.Time) (*RunResult, error) {
	target := domain.Yesterday(s.now(), s.cfg.Location)
	if date != nil {
		target = domain.CalendarDate(*date)
	}
	formattedDate := domain.FormatBR(target)

	result := &RunResult{Date: target}

	logger := log.ForContext(ctx).WithField("date", target.Format(time.DateOnly))
	logger.Infof("Processando relatórios de vendas para %s...", formattedDate)

	sellers, err := s.sellerRepo.ListActive(ctx)
	if err != nil {
		return result, &ReportError{Err: ErrFetchSellers, cause: err}
	}

	acc := newReportAccumulator(target)

	for _, seller := range sellers {
		summary, err := s.aggregator.Aggregate(ctx, seller, target)
		if err != nil {
			logger.WithError(err).WithField("seller_id", seller.ID).Error("Erro ao agregar vendas, execução interrompida")
			return result, err
		}

		job := notification.NewSellerReportJob(seller, formattedDate, summary)
		if err := s.enqueuer.Enqueue(ctx, job); err != nil {
			logger.WithError(err).WithField("seller_id", seller.ID).Error("Erro ao enfileirar relatório, execução interrompida")
			return result, NewSellerReportError(ErrEnqueueJob, seller.ID, err)
		}

		result.ScheduledSellerReports++
		metrics.SellerReportsScheduledTotal.Inc()
		logger.Infof("Relatório agendado para %s (%s) - %d vendas", seller.Name, seller.Email, summary.SalesCount)

		acc.add(seller, summary)
	}

	result.Report = acc.report()

	logger.Infof("Total de %d relatórios de vendedores agendados.", result.ScheduledSellerReports)

	if s.cfg.AdminEmail == "" {
		logger.Warn("ADMIN_EMAIL não configurado - relatório administrativo não enviado")
		return result, nil
	}

	adminJob := notification.NewAdminReportJob(s.cfg.AdminEmail, formattedDate, result.Report)
	if err := s.enqueuer.Enqueue(ctx, adminJob); err != nil {
		logger.WithError(err).Error("Erro ao enfileirar relatório administrativo")
		return result, &ReportError{Err: ErrEnqueueJob, Details: "relatório administrativo", cause: err}
	}

	result.AdminReportScheduled = true
	metrics.AdminReportsScheduledTotal.Inc()
	logger.Infof("Relatório administrativo agendado para %s", s.cfg.AdminEmail)

	return result, nil
}

// ResendCommissionEmail recalcula o resumo de um vendedor em uma data e reenfileira o e-mail.
// A data é validada antes de qualquer acesso ao banco ou à fila.
func (s *Service) ResendCommissionEmail(ctx context.Context, sellerID int64, rawDate string) (*domain.CommissionReport, error) {
	date, err := ParseReportDate(rawDate, s.now(), s.cfg.Location)
	if err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, NewSellerReportError(ErrFetchSellers, sellerID, err)
	}
	if seller == nil {
		return nil, &ReportError{Err: ErrSellerNotFound, SellerID: sellerID}
	}

	summary, err := s.aggregator.Aggregate(ctx, seller, date)
	if err != nil {
		return nil, err
	}

	formattedDate := domain.FormatBR(date)

	job := notification.NewSellerReportJob(seller, formattedDate, summary)
	if err := s.enqueuer.Enqueue(ctx, job); err != nil {
		return nil, NewSellerReportError(ErrEnqueueJob, seller.ID, err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"seller_id": seller.ID,
		"date":      date.Format(time.DateOnly),
	}).Info("E-mail de comissão reenfileirado")

	return &domain.CommissionReport{
		Seller: domain.CommissionReportSeller{
			ID:    seller.ID,
			Name:  seller.Name,
			Email: seller.Email,
		},
		Date:            formattedDate,
		SalesCount:      summary.SalesCount,
		TotalAmount:     summary.TotalAmount,
		TotalCommission: summary.TotalCommission,
	}, nil
}
