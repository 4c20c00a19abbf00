package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-commission-api/internal/metrics"
)

// Metrics registra contagem e duração por rota; endpoint é o padrão da rota e não a URL
func Metrics(endpoint string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.status)
			metrics.RequestDuration.WithLabelValues(r.Method, endpoint, status).Observe(time.Since(startTime).Seconds())
			metrics.RequestCount.WithLabelValues(r.Method, endpoint, status).Inc()
		})
	}
}
