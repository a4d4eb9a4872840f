package domain

// Metric é um valor já formatado para exibição
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

func (m Metric) String() string {
	return m.Label + ": " + m.Value
}

// Bar é uma barra de gráfico com valor numérico bruto
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type SectorCount struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

type OverviewView struct {
	TotalCompanies     Metric        `json:"total_companies"`
	AverageEBITDA      Metric        `json:"average_ebitda"`
	AverageRunway      Metric        `json:"average_runway"`
	SectorDistribution []SectorCount `json:"sector_distribution"`
}

// KeyMetrics retorna os indicadores na ordem em que aparecem na página
func (v *OverviewView) KeyMetrics() []Metric {
	return []Metric{v.TotalCompanies, v.AverageEBITDA, v.AverageRunway}
}

// SectorBars converte a distribuição por setor em barras
func (v *OverviewView) SectorBars() []Bar {
	bars := make([]Bar, 0, len(v.SectorDistribution))
	for _, s := range v.SectorDistribution {
		bars = append(bars, Bar{Label: s.Industry, Value: float64(s.Count)})
	}
	return bars
}

type FinancialHealthView struct {
	Company         string `json:"company"`
	QuickRatio      Metric `json:"quick_ratio"`
	DebtToEquity    Metric `json:"debt_to_equity"`
	GrossMargin     Metric `json:"gross_margin"`
	NetProfitMargin Metric `json:"net_profit_margin"`
}

func (v *FinancialHealthView) Ratios() []Metric {
	return []Metric{v.QuickRatio, v.DebtToEquity, v.GrossMargin, v.NetProfitMargin}
}

// RadarSeries guarda os valores de uma série na ordem de ScoreAxes, sem fechar o polígono
type RadarSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type CompetitiveLandscapeView struct {
	Company         string       `json:"company"`
	Axes            []string     `json:"axes"`
	CompanySeries   RadarSeries  `json:"company_series"`
	CompetitorMean  *RadarSeries `json:"competitor_mean,omitempty"` // nil quando não há concorrentes
	CompetitorCount int          `json:"competitor_count"`
}

type CompanyDataView struct {
	Company   string   `json:"company"`
	FactSheet []Metric `json:"fact_sheet"`
	Record    []Field  `json:"record"`
	Chart     []Bar    `json:"chart"`
}
