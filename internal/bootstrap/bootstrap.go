// Package bootstrap concentra a montagem das dependências compartilhadas pelos binários.
package bootstrap

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/cache"
	"github.com/vfg2006/sales-commission-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-commission-api/infrastructure/lock"
	"github.com/vfg2006/sales-commission-api/infrastructure/mail"
	"github.com/vfg2006/sales-commission-api/infrastructure/queue/rabbitmq"
	"github.com/vfg2006/sales-commission-api/infrastructure/queue/syncqueue"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/notification"
)

// ConfigureLogger define formato e nível dos logs a partir da configuração
func ConfigureLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

// Postgres abre a conexão e aplica as migrações pendentes
func Postgres(ctx context.Context, cfg config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}

// NotificationHandler monta o handler que renderiza e envia os e-mails via SMTP
func NotificationHandler(cfg *config.Config) (*notification.Handler, error) {
	return notification.NewHandler(mail.NewSMTPMailer(cfg.Mail), cfg.App.Name)
}

// Enqueuer escolhe o driver de fila configurado. O close devolvido libera a conexão com o broker.
func Enqueuer(cfg *config.Config, handler notification.JobHandler) (notification.Enqueuer, func(), error) {
	switch cfg.Queue.Driver {
	case config.QueueDriverRabbitMQ:
		producer, err := rabbitmq.NewProducer(cfg.Queue.RabbitMQURL, cfg.Queue.Exchange)
		if err != nil {
			return nil, nil, errors.Wrap(err, "erro ao conectar ao RabbitMQ")
		}
		return producer, producer.Close, nil
	default:
		return syncqueue.New(handler), func() {}, nil
	}
}

// Coordination agrupa as dependências que dependem do Redis opcional
type Coordination struct {
	Locker      lock.Locker
	SellerCache cache.SellerListCache
	client      *redis.Client
}

// NewCoordination usa o Redis quando habilitado; caso contrário cai para trava em memória e sem cache
func NewCoordination(ctx context.Context, cfg *config.Config) (*Coordination, error) {
	if !cfg.Redis.Enabled {
		logrus.Warn("Redis desabilitado, usando trava em memória e listagem de vendedores sem cache")
		return &Coordination{
			Locker:      lock.NewMemoryLocker(),
			SellerCache: cache.NoopSellerListCache{},
		}, nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao Redis")
	}

	return &Coordination{
		Locker:      lock.NewRedisLocker(client),
		SellerCache: cache.NewRedisSellerListCache(client, cfg.Sellers.CacheTTL()),
		client:      client,
	}, nil
}

func (c *Coordination) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
