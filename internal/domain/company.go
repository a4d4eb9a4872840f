// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Field é um par coluna/valor da linha de origem, na ordem do arquivo
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Scores são as notas de 0 a 10 usadas no radar competitivo
type Scores struct {
	Quality         float64 `json:"quality"`
	Price           float64 `json:"price"`
	Innovation      float64 `json:"innovation"`
	CustomerService float64 `json:"customer_service"`
}

// ScoreAxes define a ordem fixa dos eixos do radar
var ScoreAxes = []string{"Quality", "Price", "Innovation", "Customer Service"}

// Values retorna as notas na ordem de ScoreAxes
func (s Scores) Values() []float64 {
	return []float64{s.Quality, s.Price, s.Innovation, s.CustomerService}
}

// Company representa uma linha da tabela principal de startups
type Company struct {
	ID              string  `json:"company_id"`
	Name            string  `json:"company_name"`
	Industry        string  `json:"industry"`
	EBITDA          float64 `json:"ebitda"`
	RevenueMonthly  float64 `json:"revenue_monthly"`
	CapitalRaised   float64 `json:"capital_raised"`
	BurnRate        float64 `json:"burn_rate"`
	Runway          float64 `json:"runway"`
	QuickRatio      float64 `json:"quick_ratio"`
	DebtToEquity    float64 `json:"debt_to_equity"`
	GrossMargin     float64 `json:"gross_margin"`
	NetProfitMargin float64 `json:"net_profit_margin"`
	Scores          Scores  `json:"scores"`
	Record          []Field `json:"record"`
}

// Competitor representa uma linha da tabela de concorrentes (N:1 com Company)
type Competitor struct {
	CompanyID string `json:"company_id"`
	Scores    Scores `json:"scores"`
}
