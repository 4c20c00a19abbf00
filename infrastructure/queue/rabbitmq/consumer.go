package rabbitmq

import (
	"context"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vfg2006/sales-commission-api/internal/metrics"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

const prefetchCount = 10

type deliveryAction int

const (
	actionAck deliveryAction = iota
	actionRequeue
	actionDiscard
	actionDeadLetter
)

// Consumer consome os jobs de notificação e entrega ao handler
type Consumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	queue    string
	handler  notification.JobHandler
}

func NewConsumer(amqpURL, exchange, queue string, handler notification.JobHandler) (*Consumer, error) {
	conn, ch, err := dial(amqpURL)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		queue:    queue,
		handler:  handler,
	}, nil
}

// Run bloqueia até o contexto ser cancelado ou o canal ser fechado pelo broker
func (c *Consumer) Run(ctx context.Context) error {
	if err := declareExchange(c.channel, c.exchange); err != nil {
		return errors.Wrapf(err, "erro ao declarar exchange %s", c.exchange)
	}

	if err := declareDeadLetter(c.channel, c.exchange, c.queue); err != nil {
		return err
	}

	q, err := c.channel.QueueDeclare(c.queue, true, false, false, false, deadLetterArgs(c.exchange))
	if err != nil {
		return errors.Wrapf(err, "erro ao declarar fila %s", c.queue)
	}

	for _, kind := range []notification.JobKind{notification.KindSellerReport, notification.KindAdminReport} {
		if err := c.channel.QueueBind(q.Name, string(kind), c.exchange, false, nil); err != nil {
			return errors.Wrapf(err, "erro ao vincular fila à routing key %s", kind)
		}
	}

	if err := c.channel.Qos(prefetchCount, 0, false); err != nil {
		return errors.Wrap(err, "erro ao configurar prefetch")
	}

	deliveries, err := c.channel.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar consumo")
	}

	log.L.WithFields(log.Fields{"queue": q.Name, "exchange": c.exchange}).Info("Consumidor de notificações iniciado")

	for {
		select {
		case <-ctx.Done():
			log.L.Info("Consumidor de notificações finalizado")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("canal de entregas fechado pelo RabbitMQ")
			}
			c.settle(d, c.process(ctx, d))
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery) deliveryAction {
	return handleDelivery(ctx, c.handler, d.Body, d.Redelivered)
}

func (c *Consumer) settle(d amqp.Delivery, action deliveryAction) {
	var err error
	switch action {
	case actionAck:
		err = d.Ack(false)
	case actionRequeue:
		err = d.Nack(false, true)
	case actionDiscard, actionDeadLetter:
		// sem requeue a mensagem segue para o dead-letter exchange da fila
		err = d.Nack(false, false)
	}
	if err != nil {
		log.L.WithError(err).Warn("Erro ao confirmar entrega no RabbitMQ")
	}
}

// handleDelivery decide o destino da mensagem. Envelopes inválidos são descartados.
// Uma falha do handler volta para a fila uma vez; se a entrega já era uma reentrega,
// a mensagem vai para a fila de dead-letter em vez de circular indefinidamente.
func handleDelivery(ctx context.Context, handler notification.JobHandler, body []byte, redelivered bool) deliveryAction {
	envelope, err := notification.UnmarshalEnvelope(body)
	if err != nil {
		log.L.WithError(err).Error("Mensagem descartada: envelope inválido")
		return actionDiscard
	}

	job, err := envelope.Decode()
	if err != nil {
		log.L.WithError(err).WithField("job_id", envelope.ID).Error("Mensagem descartada: job inválido")
		metrics.JobsHandledTotal.WithLabelValues(string(envelope.Kind), "discarded").Inc()
		return actionDiscard
	}

	ctx, _ = log.WithCorrelationID(ctx)
	if err := handler.Handle(ctx, job); err != nil {
		entry := log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"job_id":   envelope.ID,
			"job_kind": string(job.Kind()),
		})

		if redelivered {
			entry.Error("Falha ao processar job reentregue, enviando para dead-letter")
			metrics.JobsHandledTotal.WithLabelValues(string(job.Kind()), "dead_lettered").Inc()
			return actionDeadLetter
		}

		entry.Warn("Falha ao processar job, devolvendo para a fila")
		metrics.JobsHandledTotal.WithLabelValues(string(job.Kind()), "requeued").Inc()
		return actionRequeue
	}

	metrics.JobsHandledTotal.WithLabelValues(string(job.Kind()), "ok").Inc()
	return actionAck
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
