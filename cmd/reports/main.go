package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-commission-api/infrastructure/repository"
	"github.com/vfg2006/sales-commission-api/internal/bootstrap"
	"github.com/vfg2006/sales-commission-api/internal/config"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/pkg/log"
	"github.com/vfg2006/sales-commission-api/pkg/utils"
)

// Execução manual do relatório diário: reports --date=AAAA-MM-DD (padrão: ontem no fuso configurado)
func main() {
	rawDate := pflag.String("date", "", "data do relatório no formato AAAA-MM-DD (padrão: ontem)")
	pflag.Parse()

	if err := run(*rawDate); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(rawDate string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	bootstrap.ConfigureLogger(cfg)

	var date *time.Time
	if rawDate != "" {
		parsed, err := reporting.ParseReportDate(rawDate, time.Now(), cfg.DailySalesReport.Location)
		if err != nil {
			return err
		}
		date = &parsed
	}

	ctx, _ := log.WithCorrelationID(context.Background())

	pgConn, err := bootstrap.Postgres(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pgConn.Close()

	notificationHandler, err := bootstrap.NotificationHandler(cfg)
	if err != nil {
		return err
	}

	enqueuer, closeQueue, err := bootstrap.Enqueuer(cfg, notificationHandler)
	if err != nil {
		return err
	}
	defer closeQueue()

	service := reporting.NewService(
		repository.NewSellerRepository(pgConn),
		repository.NewSaleRepository(pgConn),
		enqueuer,
		reporting.Config{
			AdminEmail: cfg.Mail.AdminEmail,
			Location:   cfg.DailySalesReport.Location,
		},
	)

	result, err := service.RunDailyReports(ctx, date)
	if result != nil {
		logrus.Info(utils.PrettyJSON(result))
	}
	if err != nil {
		return err
	}

	logrus.Info("Relatórios diários enviados com sucesso!")
	return nil
}
