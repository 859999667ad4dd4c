package handler

import (
	"net/http"

	"github.com/vfg2006/pyme-analytics-api/infrastructure/spreadsheet"
	"github.com/vfg2006/pyme-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/pyme-analytics-api/internal/config"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/pyme-analytics-api/internal/usecases/simulating"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(cfg *config.Config, parser spreadsheet.Parser, service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports",
			Method:  http.MethodPost,
			Handler: CreateReport(cfg, parser, service),
		},
		{
			Path:    "/v1/reports/demo",
			Method:  http.MethodGet,
			Handler: DemoReport(service),
		},
	}
}

func Simulator(service simulating.Simulator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/simulator/price",
			Method:  http.MethodPost,
			Handler: SimulatePrice(service),
		},
	}
}
