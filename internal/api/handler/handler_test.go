package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/startup-dashboard/internal/api/handler/router"
	"github.com/vfg2006/startup-dashboard/internal/dataset"
	"github.com/vfg2006/startup-dashboard/internal/domain"
	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/startup-dashboard/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var companyNames = []string{"Acme", "Globex"}

func newRouter(service analyzing.Analyzer) router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Pages(service)...),
		router.WithRoutes(Charts(service)...),
		router.WithRoutes(Views(service)...),
	)
}

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func notFoundError(name string) error {
	_, err := analyzing.NewService(mustDataset()).FinancialHealth(name)
	return err
}

func mustDataset() *dataset.Dataset {
	ds, err := dataset.New([]domain.Company{{ID: "1", Name: "Acme", Industry: "Tech"}}, nil)
	if err != nil {
		panic(err)
	}
	return ds
}

func overviewView() *domain.OverviewView {
	return &domain.OverviewView{
		TotalCompanies: domain.Metric{Label: "Total Companies", Value: "2"},
		AverageEBITDA:  domain.Metric{Label: "Average EBITDA", Value: "$375,000"},
		AverageRunway:  domain.Metric{Label: "Average Runway (Months)", Value: "11.2"},
		SectorDistribution: []domain.SectorCount{
			{Industry: "Tech", Count: 1},
			{Industry: "Health", Count: 1},
		},
	}
}

func landscapeView(name string) *domain.CompetitiveLandscapeView {
	return &domain.CompetitiveLandscapeView{
		Company:       name,
		Axes:          domain.ScoreAxes,
		CompanySeries: domain.RadarSeries{Label: name, Values: []float64{8, 6, 9, 7}},
	}
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := newRouter(mocks.NewMockAnalyzer(ctrl))

	rec := serve(rt, http.MethodGet, "/healthcheck")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestIndex_RedirectsToOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := newRouter(mocks.NewMockAnalyzer(ctrl))

	rec := serve(rt, http.MethodGet, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, OverviewPath, rec.Header().Get("Location"))
}

func TestPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalyzer(ctrl)
	rt := newRouter(service)

	service.EXPECT().CompanyNames().Return(companyNames).AnyTimes()

	tests := []struct {
		name   string
		target string
		setup  func()
		want   []string
	}{
		{
			name:   "Visão geral",
			target: OverviewPath,
			setup: func() {
				service.EXPECT().Overview().Return(overviewView(), nil)
			},
			want: []string{"Investment Portfolio Overview", "Average EBITDA", "$375,000", `src="/charts/sectors.svg"`},
		},
		{
			name:   "Saúde financeira usa a primeira empresa por padrão",
			target: FinancialHealthPath,
			setup: func() {
				service.EXPECT().FinancialHealth("Acme").Return(&domain.FinancialHealthView{
					Company:    "Acme",
					QuickRatio: domain.Metric{Label: "Quick Ratio", Value: "1.25"},
				}, nil)
			},
			want: []string{"Key Financial Ratios", "Quick Ratio", "1.25", `<option value="Acme" selected>`},
		},
		{
			name:   "Cenário competitivo sem concorrentes",
			target: CompetitiveLandscapePath + "?company=Globex",
			setup: func() {
				service.EXPECT().CompetitiveLandscape("Globex").Return(landscapeView("Globex"), nil)
			},
			want: []string{"Competitive Landscape Analysis", "/charts/radar.svg?company=Globex", "No competitor data for Globex."},
		},
		{
			name:   "Dados da empresa",
			target: CompanyDataPath + "?company=Acme",
			setup: func() {
				service.EXPECT().CompanyData("Acme").Return(&domain.CompanyDataView{
					Company:   "Acme",
					FactSheet: []domain.Metric{{Label: "Burn Rate", Value: "$40,000/month"}},
					Record:    []domain.Field{{Name: "founded", Value: "2019"}},
				}, nil)
			},
			want: []string{"Fact Sheet: Acme", "$40,000/month", "founded", "2019", "/charts/company-metrics.svg?company=Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, http.MethodGet, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestPages_UnknownCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalyzer(ctrl)
	rt := newRouter(service)

	service.EXPECT().CompanyNames().Return(companyNames).AnyTimes()
	service.EXPECT().FinancialHealth("Umbrella").Return(nil, notFoundError("Umbrella"))

	rec := serve(rt, http.MethodGet, FinancialHealthPath+"?company=Umbrella")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "company not found")

	// a navegação continua disponível na página de erro
	assert.Contains(t, rec.Body.String(), `href="/overview?company=Umbrella"`)
}

func TestViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalyzer(ctrl)
	rt := newRouter(service)

	tests := []struct {
		name       string
		target     string
		setup      func()
		wantStatus int
		want       string
	}{
		{
			name:   "Lista de empresas",
			target: "/v1/companies",
			setup: func() {
				service.EXPECT().CompanyNames().Return(companyNames)
			},
			wantStatus: http.StatusOK,
			want:       `{"companies":["Acme","Globex"]}`,
		},
		{
			name:   "Visão geral",
			target: "/v1/overview",
			setup: func() {
				service.EXPECT().Overview().Return(overviewView(), nil)
			},
			wantStatus: http.StatusOK,
			want:       `"sector_distribution":[{"industry":"Tech","count":1},{"industry":"Health","count":1}]`,
		},
		{
			name:   "Cenário competitivo omite média sem concorrentes",
			target: "/v1/companies/Globex/competitive-landscape",
			setup: func() {
				service.EXPECT().CompetitiveLandscape("Globex").Return(landscapeView("Globex"), nil)
			},
			wantStatus: http.StatusOK,
			want:       `"company_series":{"label":"Globex","values":[8,6,9,7]},"competitor_count":0`,
		},
		{
			name:   "Dados da empresa",
			target: "/v1/companies/Acme/company-data",
			setup: func() {
				service.EXPECT().CompanyData("Acme").Return(&domain.CompanyDataView{
					Company: "Acme",
					Chart:   []domain.Bar{{Label: "Runway", Value: 6}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			want:       `"chart":[{"label":"Runway","value":6}]`,
		},
		{
			name:   "Empresa inexistente",
			target: "/v1/companies/Umbrella/financial-health",
			setup: func() {
				service.EXPECT().FinancialHealth("Umbrella").Return(nil, notFoundError("Umbrella"))
			},
			wantStatus: http.StatusNotFound,
			want:       `"code":"` + apiErrors.ErrCompanyNotFound + `"`,
		},
		{
			name:   "Falha inesperada",
			target: "/v1/companies/Acme/company-data",
			setup: func() {
				service.EXPECT().CompanyData("Acme").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			want:       `"code":"` + apiErrors.ErrInternalServer + `"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, http.MethodGet, tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestCharts(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalyzer(ctrl)
	rt := newRouter(service)

	service.EXPECT().CompanyNames().Return(companyNames).AnyTimes()

	tests := []struct {
		name   string
		target string
		setup  func()
	}{
		{
			name:   "Setores",
			target: "/charts/sectors.svg",
			setup: func() {
				service.EXPECT().Overview().Return(overviewView(), nil)
			},
		},
		{
			name:   "Radar da primeira empresa",
			target: "/charts/radar.svg",
			setup: func() {
				service.EXPECT().CompetitiveLandscape("Acme").Return(landscapeView("Acme"), nil)
			},
		},
		{
			name:   "Métricas da empresa",
			target: "/charts/company-metrics.svg?company=Globex",
			setup: func() {
				service.EXPECT().CompanyData("Globex").Return(&domain.CompanyDataView{
					Company: "Globex",
					Chart: []domain.Bar{
						{Label: "EBITDA", Value: -250000},
						{Label: "Runway", Value: 16.4},
					},
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rec := serve(rt, http.MethodGet, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, svgContentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
			assert.True(t, strings.Contains(rec.Body.String(), "<svg"))
		})
	}
}

func TestCharts_RenderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAnalyzer(ctrl)
	rt := newRouter(service)

	// sem barras o gráfico não pode ser desenhado
	service.EXPECT().CompanyData("Acme").Return(&domain.CompanyDataView{Company: "Acme"}, nil)

	rec := serve(rt, http.MethodGet, "/charts/company-metrics.svg?company=Acme")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrRenderFailed)
}

func TestRouter_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := newRouter(mocks.NewMockAnalyzer(ctrl))

	rec := serve(rt, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)

	rec = serve(rt, http.MethodPost, "/v1/overview")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
