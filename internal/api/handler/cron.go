package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/sales-commission-api/pkg/apiErrors"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

const CronJobTypeDailySalesReport = "daily-sales-report"

// DailyReportTrigger é implementado pelo agendador do relatório diário
type DailyReportTrigger interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// RunDailySalesReport dispara manualmente o relatório diário, respeitando a trava de execução
func RunDailySalesReport(trigger DailyReportTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("Execução manual do relatório diário solicitada")

		if !trigger.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrReportRunning, "Relatório diário já está em execução", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeDailySalesReport,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(trigger DailyReportTrigger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			CronJobTypeDailySalesReport: trigger.GetStatus(),
		})
	}
}
