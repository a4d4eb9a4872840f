package handler

import (
	"net/http"

	"github.com/vfg2006/startup-dashboard/internal/api/handler/router"
	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/startup-dashboard/pkg/middleware"
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

// Pages retorna as rotas HTML do dashboard
func Pages(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: Index(),
		},
		{
			Path:    OverviewPath,
			Method:  http.MethodGet,
			Handler: OverviewPage(service),
		},
		{
			Path:    FinancialHealthPath,
			Method:  http.MethodGet,
			Handler: FinancialHealthPage(service),
		},
		{
			Path:    CompetitiveLandscapePath,
			Method:  http.MethodGet,
			Handler: CompetitiveLandscapePage(service),
		},
		{
			Path:    CompanyDataPath,
			Method:  http.MethodGet,
			Handler: CompanyDataPage(service),
		},
	}
}

func Charts(service analyzing.Analyzer) []router.Route {
	noCache := []func(http.Handler) http.Handler{middleware.CacheControl("no-cache")}

	return []router.Route{
		{
			Path:        "/charts/sectors.svg",
			Method:      http.MethodGet,
			Handler:     SectorsChart(service),
			Middlewares: noCache,
		},
		{
			Path:        "/charts/radar.svg",
			Method:      http.MethodGet,
			Handler:     RadarChart(service),
			Middlewares: noCache,
		},
		{
			Path:        "/charts/company-metrics.svg",
			Method:      http.MethodGet,
			Handler:     CompanyMetricsChart(service),
			Middlewares: noCache,
		},
	}
}

// Views expõe as mesmas visões das páginas em JSON
func Views(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/companies",
			Method:  http.MethodGet,
			Handler: ListCompanies(service),
		},
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/companies/:name/financial-health",
			Method:  http.MethodGet,
			Handler: GetFinancialHealth(service),
		},
		{
			Path:    "/v1/companies/:name/competitive-landscape",
			Method:  http.MethodGet,
			Handler: GetCompetitiveLandscape(service),
		},
		{
			Path:    "/v1/companies/:name/company-data",
			Method:  http.MethodGet,
			Handler: GetCompanyData(service),
		},
	}
}
