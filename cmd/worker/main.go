package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/queue/rabbitmq"
	"github.com/vfg2006/sales-commission-api/internal/bootstrap"
	"github.com/vfg2006/sales-commission-api/internal/config"
)

// Consome os jobs de notificação publicados no RabbitMQ e envia os e-mails
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg)

	if cfg.Queue.Driver != config.QueueDriverRabbitMQ {
		logrus.Fatalf("O worker exige QUEUE_DRIVER=%s (atual: %s)", config.QueueDriverRabbitMQ, cfg.Queue.Driver)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notificationHandler, err := bootstrap.NotificationHandler(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar templates de e-mail")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.Queue.RabbitMQURL, cfg.Queue.Exchange, cfg.Queue.Name, notificationHandler)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao RabbitMQ")
	}
	defer consumer.Close()

	logrus.WithFields(logrus.Fields{
		"exchange": cfg.Queue.Exchange,
		"queue":    cfg.Queue.Name,
	}).Info("Worker de notificações iniciado")

	if err := consumer.Run(ctx); err != nil {
		logrus.WithError(err).Error("Worker de notificações encerrado com erro")
		return
	}

	logrus.Info("Worker de notificações encerrado")
}
