package handler

import (
	"net/http"

	"github.com/vfg2006/sales-commission-api/internal/api/handler/router"
	"github.com/vfg2006/sales-commission-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-commission-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-commission-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: MetricsHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Sellers(service selling.Manager, reporter reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sellers",
			Method:  http.MethodGet,
			Handler: ListSellers(service),
		},
		{
			Path:    "/v1/sellers",
			Method:  http.MethodPost,
			Handler: CreateSeller(service),
		},
		{
			Path:    "/v1/sellers/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSeller(service),
		},
		{
			Path:    "/v1/sellers/:id/resend-commission-email",
			Method:  http.MethodPost,
			Handler: ResendCommissionEmail(reporter),
		},
		{
			Path:    "/v1/sellers/:id/sales",
			Method:  http.MethodGet,
			Handler: ListSellerSales(service),
		},
	}
}

func Sales(service selling.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
	}
}

func CronJobs(trigger DailyReportTrigger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/daily-sales-report/run",
			Method:  http.MethodPost,
			Handler: RunDailySalesReport(trigger),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(trigger),
		},
	}
}
