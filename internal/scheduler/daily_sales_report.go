// Package scheduler contém os serviços de agendamento do relatório diário de vendas
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-commission-api/infrastructure/lock"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/domain"
	"github.com/vfg2006/sales-commission-api/internal/metrics"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

const (
	TriggerCron   = "cron"
	TriggerManual = "manual"

	lockKeyPrefix = "daily-sales-report:"
)

type DailySalesReportConfig struct {
	CronSchedule string
	SyncEnabled  bool
	Location     *time.Location
	LockTTL      time.Duration
}

type DailySalesReportService struct {
	scheduler           *gocron.Scheduler
	reporter            reporting.Reporter
	locker              lock.Locker
	config              DailySalesReportConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastOutcome         string
	lastError           string
	lastScheduled       int
	now                 func() time.Time
}

func NewDailySalesReportService(
	reporter reporting.Reporter,
	locker lock.Locker,
	cfg *config.Config,
) *DailySalesReportService {
	reportConfig := DailySalesReportConfig{
		CronSchedule: cfg.DailySalesReport.CronSchedule, // Default: 23:55 todos os dias
		SyncEnabled:  cfg.DailySalesReport.Enabled,
		Location:     cfg.DailySalesReport.Location,
		LockTTL:      cfg.DailySalesReport.LockTTL(),
	}
	if reportConfig.Location == nil {
		reportConfig.Location = time.UTC
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"timezone":      reportConfig.Location.String(),
	}).Info("Configuração do agendador do relatório diário de vendas carregada")

	return &DailySalesReportService{
		scheduler: gocron.NewScheduler(reportConfig.Location),
		reporter:  reporter,
		locker:    locker,
		config:    reportConfig,
		now:       time.Now,
	}
}

func (s *DailySalesReportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Cron do relatório diário de vendas desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório diário de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(func() {
		if err := s.RunScheduled(ctx); err != nil {
			log.L.WithError(err).Error("Erro na execução agendada do relatório diário de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando cron do relatório diário de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunScheduled é o disparo da cron: agenda os relatórios do dia anterior
func (s *DailySalesReportService) RunScheduled(ctx context.Context) error {
	return s.run(ctx, TriggerCron)
}

// run executa no máximo uma vez por slot diário entre todas as instâncias.
// Sem a trava a execução é ignorada por completo, sem nova tentativa.
func (s *DailySalesReportService) run(ctx context.Context, trigger string) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Warn("Relatório diário de vendas já está em execução")
		metrics.ReportRunsTotal.WithLabelValues(trigger, metrics.OutcomeSkipped).Inc()
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	outcome, scheduled, err := s.runLocked(ctx, trigger)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastOutcome = outcome
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	if outcome != metrics.OutcomeSkipped {
		s.lastScheduled = scheduled
	}
	s.syncMutex.Unlock()

	metrics.ReportRunsTotal.WithLabelValues(trigger, outcome).Inc()

	return err
}

func (s *DailySalesReportService) runLocked(ctx context.Context, trigger string) (string, int, error) {
	key := s.lockKey()
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_trigger":  trigger,
		"run_lock_key": key,
	})

	held, err := s.locker.Acquire(ctx, key, s.config.LockTTL)
	if errors.Is(err, lock.ErrNotAcquired) {
		logger.Info("Relatório diário de vendas já executado ou em execução em outra instância, ignorando")
		return metrics.OutcomeSkipped, 0, nil
	}
	if err != nil {
		logger.WithError(err).Error("Erro ao adquirir trava do relatório diário de vendas")
		return metrics.OutcomeFailure, 0, fmt.Errorf("erro ao adquirir trava: %w", err)
	}
	defer func() {
		if err := held.Release(context.WithoutCancel(ctx)); err != nil {
			logger.WithError(err).Warn("Erro ao liberar trava do relatório diário de vendas")
		}
	}()

	startedAt := time.Now()
	result, err := s.reporter.RunDailyReports(ctx, nil)
	metrics.ReportRunDuration.Observe(time.Since(startedAt).Seconds())

	scheduled := 0
	if result != nil {
		scheduled = result.ScheduledSellerReports
	}

	if err != nil {
		logger.WithError(err).WithField("run_seller_reports", scheduled).Error("Falha ao enviar relatórios diários")
		return metrics.OutcomeFailure, scheduled, err
	}

	logger.WithFields(log.Fields{
		"date":               result.Date.Format(time.DateOnly),
		"run_seller_reports": scheduled,
		"run_admin_report":   result.AdminReportScheduled,
	}).Info("Relatórios diários enviados com sucesso")

	return metrics.OutcomeSuccess, scheduled, nil
}

// lockKey identifica o slot do dia no fuso configurado
func (s *DailySalesReportService) lockKey() string {
	slot := domain.CalendarDate(s.now().In(s.config.Location))
	return lockKeyPrefix + slot.Format(time.DateOnly)
}

// TriggerManualSync inicia manualmente o relatório diário respeitando a mesma trava da cron.
// Retorna false quando já existe uma execução em andamento neste processo.
func (s *DailySalesReportService) TriggerManualSync(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Relatório diário de vendas já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	log.L.Info("Iniciando execução manual do relatório diário de vendas")

	go func() {
		if err := s.run(context.WithoutCancel(ctx), TriggerManual); err != nil {
			log.L.WithError(err).Error("Erro na execução manual do relatório diário de vendas")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *DailySalesReportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":                  s.config.SyncEnabled,
		"sync_cron":                     s.config.CronSchedule,
		"timezone":                      s.config.Location.String(),
		"running":                       s.syncRunning,
		"last_sync_started_at":          s.lastSyncStartedAt,
		"last_sync_completed_at":        s.lastSyncCompletedAt,
		"last_outcome":                  s.lastOutcome,
		"last_error":                    s.lastError,
		"last_scheduled_seller_reports": s.lastScheduled,
	}
}
