package syncqueue

import (
	"context"

	"github.com/vfg2006/sales-commission-api/internal/metrics"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

const driverName = "sync"

// Queue processa o job no momento do enfileiramento, sem broker.
// Falhas de entrega são apenas registradas: quem enfileira nunca as observa.
type Queue struct {
	handler notification.JobHandler
}

func New(handler notification.JobHandler) *Queue {
	return &Queue{handler: handler}
}

func (q *Queue) Enqueue(ctx context.Context, job notification.Job) error {
	metrics.JobsEnqueuedTotal.WithLabelValues(string(job.Kind()), driverName, "ok").Inc()

	if err := q.handler.Handle(ctx, job); err != nil {
		metrics.JobsHandledTotal.WithLabelValues(string(job.Kind()), "failed").Inc()
		log.ForContext(ctx).WithError(err).WithField("job_kind", string(job.Kind())).
			Error("Falha ao processar job de notificação")
		return nil
	}

	metrics.JobsHandledTotal.WithLabelValues(string(job.Kind()), "ok").Inc()
	return nil
}
