package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

var (
	// Relatório diário
	ReportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_sales_report_runs_total",
			Help: "Total de execuções do relatório diário por resultado",
		},
		[]string{"trigger", "outcome"},
	)

	ReportRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "daily_sales_report_run_duration_seconds",
			Help:    "Duração das execuções do relatório diário",
			Buckets: prometheus.DefBuckets,
		},
	)

	SellerReportsScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "daily_sales_report_seller_jobs_total",
			Help: "Total de relatórios de vendedores agendados",
		},
	)

	AdminReportsScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "daily_sales_report_admin_jobs_total",
			Help: "Total de relatórios administrativos agendados",
		},
	)

	// Fila de notificações
	JobsEnqueuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_jobs_enqueued_total",
			Help: "Total de jobs de notificação enfileirados por tipo e driver",
		},
		[]string{"kind", "driver", "status"},
	)

	JobsHandledTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_jobs_handled_total",
			Help: "Total de jobs de notificação processados por tipo e status",
		},
		[]string{"kind", "status"},
	)

	// HTTP
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
)

// Status normaliza erro em rótulo de métrica
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
