package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-commission-api/infrastructure/queue/rabbitmq"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/api"
	"github.com/vfg2006/sales-commission-api/internal/bootstrap"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/scheduler"
	"github.com/vfg2006/sales-commission-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn, err := bootstrap.Postgres(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer pgConn.Close()

	coordination, err := bootstrap.NewCoordination(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o Redis")
	}
	defer coordination.Close()

	sellerRepo := repository.NewSellerRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	notificationHandler, err := bootstrap.NotificationHandler(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar templates de e-mail")
	}

	enqueuer, closeQueue, err := bootstrap.Enqueuer(cfg, notificationHandler)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a fila de notificações")
	}
	defer closeQueue()

	if cfg.Queue.Driver == config.QueueDriverRabbitMQ {
		consumer, err := rabbitmq.NewConsumer(cfg.Queue.RabbitMQURL, cfg.Queue.Exchange, cfg.Queue.Name, notificationHandler)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao iniciar o consumidor de notificações")
		}
		defer consumer.Close()

		go func() {
			if err := consumer.Run(ctx); err != nil {
				logrus.WithError(err).Error("Consumidor de notificações encerrado com erro")
			}
		}()
	}

	authenticator := authenticating.NewService(userRepo, cfg)
	sellingService := selling.NewService(sellerRepo, saleRepo, coordination.SellerCache, cfg.DailySalesReport.Location)
	reportingService := reporting.NewService(sellerRepo, saleRepo, enqueuer, reporting.Config{
		AdminEmail: cfg.Mail.AdminEmail,
		Location:   cfg.DailySalesReport.Location,
	})

	dailySalesReportService := scheduler.NewDailySalesReportService(reportingService, coordination.Locker, cfg)

	if err := dailySalesReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário de vendas")
	} else {
		logrus.Info("Agendador do relatório diário de vendas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		sellingService,
		reportingService,
		dailySalesReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
