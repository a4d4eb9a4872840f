package analyzing

import (
	"sort"
	"strconv"

	"github.com/vfg2006/startup-dashboard/internal/dataset"
	"github.com/vfg2006/startup-dashboard/internal/domain"
	"github.com/vfg2006/startup-dashboard/pkg/apiErrors"
	"github.com/vfg2006/startup-dashboard/pkg/format"
)

const competitorSeriesLabel = "Average Competitor"

//go:generate mockgen -source=service.go -destination=mocks/mock_analyzer.go -package=mocks

// Analyzer monta as quatro visões do dashboard a partir do dataset carregado
type Analyzer interface {
	// CompanyNames retorna as opções do seletor de empresa
	CompanyNames() []string

	Overview() (*domain.OverviewView, error)
	FinancialHealth(companyName string) (*domain.FinancialHealthView, error)
	CompetitiveLandscape(companyName string) (*domain.CompetitiveLandscapeView, error)
	CompanyData(companyName string) (*domain.CompanyDataView, error)
}

// Service não guarda estado além do dataset imutável; cada chamada recalcula a visão
type Service struct {
	dataset *dataset.Dataset
}

func NewService(ds *dataset.Dataset) Analyzer {
	return &Service{dataset: ds}
}

func (s *Service) CompanyNames() []string {
	return s.dataset.CompanyNames()
}

func (s *Service) company(name string) (domain.Company, error) {
	if name == "" {
		return domain.Company{}, newCompanyError(ErrCompanyNameRequired, name)
	}

	c, err := s.dataset.CompanyByName(name)
	if err != nil {
		return domain.Company{}, newCompanyError(err, name)
	}
	return c, nil
}

func (s *Service) Overview() (*domain.OverviewView, error) {
	companies := s.dataset.Companies()
	if len(companies) == 0 {
		return nil, &AnalysisError{Err: ErrEmptyAggregate, Code: apiErrors.ErrRenderFailed, Details: "overview"}
	}

	var ebitda, runway float64
	for _, c := range companies {
		ebitda += c.EBITDA
		runway += c.Runway
	}
	n := float64(len(companies))

	return &domain.OverviewView{
		TotalCompanies:     domain.Metric{Label: "Total Companies", Value: strconv.Itoa(len(companies))},
		AverageEBITDA:      domain.Metric{Label: "Average EBITDA", Value: format.Currency(ebitda / n)},
		AverageRunway:      domain.Metric{Label: "Average Runway (Months)", Value: format.Decimal(runway/n, 1)},
		SectorDistribution: sectorDistribution(companies),
	}, nil
}

// sectorDistribution conta empresas por setor, em ordem decrescente;
// empates mantêm a ordem da primeira ocorrência na tabela
func sectorDistribution(companies []domain.Company) []domain.SectorCount {
	index := make(map[string]int)
	counts := make([]domain.SectorCount, 0)
	for _, c := range companies {
		i, ok := index[c.Industry]
		if !ok {
			i = len(counts)
			index[c.Industry] = i
			counts = append(counts, domain.SectorCount{Industry: c.Industry})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts
}

func (s *Service) FinancialHealth(companyName string) (*domain.FinancialHealthView, error) {
	c, err := s.company(companyName)
	if err != nil {
		return nil, err
	}

	return &domain.FinancialHealthView{
		Company:         c.Name,
		QuickRatio:      domain.Metric{Label: "Quick Ratio", Value: format.Decimal(c.QuickRatio, 2)},
		DebtToEquity:    domain.Metric{Label: "Debt to Equity", Value: format.Decimal(c.DebtToEquity, 2)},
		GrossMargin:     domain.Metric{Label: "Gross Margin", Value: format.Percentage(c.GrossMargin)},
		NetProfitMargin: domain.Metric{Label: "Net Profit Margin", Value: format.Percentage(c.NetProfitMargin)},
	}, nil
}

func (s *Service) CompetitiveLandscape(companyName string) (*domain.CompetitiveLandscapeView, error) {
	c, err := s.company(companyName)
	if err != nil {
		return nil, err
	}

	competitors := s.dataset.CompetitorsOf(c.ID)

	view := &domain.CompetitiveLandscapeView{
		Company: c.Name,
		Axes:    domain.ScoreAxes,
		CompanySeries: domain.RadarSeries{
			Label:  c.Name,
			Values: c.Scores.Values(),
		},
		CompetitorCount: len(competitors),
	}

	if mean, ok := meanScores(competitors); ok {
		view.CompetitorMean = &domain.RadarSeries{
			Label:  competitorSeriesLabel,
			Values: mean.Values(),
		}
	}

	return view, nil
}

// meanScores retorna false quando não há concorrentes; a série média é então omitida
func meanScores(competitors []domain.Competitor) (domain.Scores, bool) {
	if len(competitors) == 0 {
		return domain.Scores{}, false
	}

	var sum domain.Scores
	for _, c := range competitors {
		sum.Quality += c.Scores.Quality
		sum.Price += c.Scores.Price
		sum.Innovation += c.Scores.Innovation
		sum.CustomerService += c.Scores.CustomerService
	}

	n := float64(len(competitors))
	return domain.Scores{
		Quality:         sum.Quality / n,
		Price:           sum.Price / n,
		Innovation:      sum.Innovation / n,
		CustomerService: sum.CustomerService / n,
	}, true
}

func (s *Service) CompanyData(companyName string) (*domain.CompanyDataView, error) {
	c, err := s.company(companyName)
	if err != nil {
		return nil, err
	}

	return &domain.CompanyDataView{
		Company: c.Name,
		FactSheet: []domain.Metric{
			{Label: "EBITDA", Value: format.Currency(c.EBITDA)},
			{Label: "Monthly Revenue", Value: format.PerMonth(format.Currency(c.RevenueMonthly))},
			{Label: "Capital Raised", Value: format.Currency(c.CapitalRaised)},
			{Label: "Burn Rate", Value: format.PerMonth(format.Currency(c.BurnRate))},
			{Label: "Runway", Value: format.MonthCount(c.Runway)},
		},
		Record: c.Record,
		// o gráfico usa os valores brutos, não os textos formatados
		Chart: []domain.Bar{
			{Label: "EBITDA", Value: c.EBITDA},
			{Label: "Monthly Revenue", Value: c.RevenueMonthly},
			{Label: "Capital Raised", Value: c.CapitalRaised},
			{Label: "Burn Rate", Value: c.BurnRate},
			{Label: "Runway", Value: c.Runway},
		},
	}, nil
}
