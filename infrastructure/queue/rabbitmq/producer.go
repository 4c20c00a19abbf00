package rabbitmq

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vfg2006/sales-commission-api/internal/metrics"
	"github.com/vfg2006/sales-commission-api/internal/notification"
	"github.com/vfg2006/sales-commission-api/pkg/log"
)

const driverName = "rabbitmq"

// Producer publica jobs de notificação em um exchange topic durável.
// A routing key é o tipo do job.
type Producer struct {
	mu          sync.Mutex
	conn        *amqp.Connection
	channel     channel
	openChannel func() (channel, error)
	exchange    string
}

func NewProducer(amqpURL, exchange string) (*Producer, error) {
	conn, ch, err := dial(amqpURL)
	if err != nil {
		return nil, err
	}

	if err := declareExchange(ch, exchange); err != nil {
		ch.Close()
		conn.Close()
		return nil, errors.Wrapf(err, "erro ao declarar exchange %s", exchange)
	}

	return &Producer{
		conn:    conn,
		channel: ch,
		openChannel: func() (channel, error) {
			next, err := conn.Channel()
			if err != nil {
				return nil, err
			}
			return next, nil
		},
		exchange: exchange,
	}, nil
}

func (p *Producer) Enqueue(ctx context.Context, job notification.Job) error {
	envelope, err := notification.NewEnvelope(job)
	if err != nil {
		return err
	}

	body, err := envelope.Marshal()
	if err != nil {
		return errors.Wrap(err, "erro ao serializar envelope")
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    envelope.ID,
		Timestamp:    time.Now(),
		Body:         body,
	}

	err = p.publish(ctx, string(job.Kind()), publishing)
	metrics.JobsEnqueuedTotal.WithLabelValues(string(job.Kind()), driverName, metrics.Status(err)).Inc()
	if err != nil {
		return errors.Wrapf(err, "erro ao publicar job %s", job.Kind())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"job_kind": string(job.Kind()),
		"job_id":   envelope.ID,
	}).Debug("Job publicado no RabbitMQ")

	return nil
}

// publish tenta reabrir o canal uma única vez quando a publicação falha
func (p *Producer) publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
	if err == nil {
		return nil
	}

	log.ForContext(ctx).WithError(err).Warn("Falha ao publicar no RabbitMQ, reabrindo canal")

	ch, chErr := p.openChannel()
	if chErr != nil {
		return err
	}
	if closeErr := p.channel.Close(); closeErr != nil {
		log.ForContext(ctx).WithError(closeErr).Debug("Canal anterior já estava fechado")
	}
	p.channel = ch

	if exErr := declareExchange(p.channel, p.exchange); exErr != nil {
		return exErr
	}

	return p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, msg)
}

func (p *Producer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
