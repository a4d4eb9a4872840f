// Package loader lê as tabelas de startups e concorrentes de arquivos ou do Postgres.
package loader

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/startup-dashboard/internal/domain"
)

var (
	ErrEmptyTable    = errors.New("table has no header row")
	ErrMissingColumn = errors.New("missing required column")
	ErrInvalidNumber = errors.New("invalid numeric value")
)

// Colunas da tabela principal
const (
	ColCompanyID       = "company_id"
	ColCompanyName     = "company_name"
	ColIndustry        = "industry"
	ColEBITDA          = "EBITDA"
	ColRevenueMonthly  = "revenue_monthly"
	ColCapitalRaised   = "capital_raised"
	ColBurnRate        = "burn_rate"
	ColRunway          = "runway"
	ColQuickRatio      = "quick_ratio"
	ColDebtToEquity    = "debt_to_equity"
	ColGrossMargin     = "gross_margin"
	ColNetProfitMargin = "net_profit_margin"
	ColQuality         = "quality"
	ColPrice           = "price"
	ColInnovation      = "innovation"
	ColCustomerService = "customer_service"
)

// Colunas da tabela de concorrentes
const (
	ColCompetitorQuality         = "competitor_quality"
	ColCompetitorPrice           = "competitor_price"
	ColCompetitorInnovation      = "competitor_innovation"
	ColCompetitorCustomerService = "competitor_customer_service"
)

var companyColumns = []string{
	ColCompanyID, ColCompanyName, ColIndustry, ColEBITDA, ColRevenueMonthly,
	ColCapitalRaised, ColBurnRate, ColRunway, ColQuickRatio, ColDebtToEquity,
	ColGrossMargin, ColNetProfitMargin, ColQuality, ColPrice, ColInnovation,
	ColCustomerService,
}

var competitorColumns = []string{
	ColCompanyID, ColCompetitorQuality, ColCompetitorPrice,
	ColCompetitorInnovation, ColCompetitorCustomerService,
}

// Table é uma tabela de texto com cabeçalho, independente do formato de origem
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// row resolve colunas pelo nome do cabeçalho
type row struct {
	table  *Table
	index  map[string]int
	values []string
	line   int
}

func (t *Table) columnIndex(required []string) (map[string]int, error) {
	if len(t.Header) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, t.Name)
	}

	index := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		index[strings.TrimSpace(h)] = i
	}

	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s: %s", t.Name, col)
		}
	}

	return index, nil
}

func (r row) text(col string) string {
	i := r.index[col]
	if i >= len(r.values) {
		return ""
	}
	return strings.TrimSpace(r.values[i])
}

func (r row) number(col string) (float64, error) {
	raw := r.text(col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "%s: row %d, column %s: %q", r.table.Name, r.line, col, raw)
	}
	return v, nil
}

// numericField liga uma coluna numérica ao campo que recebe o valor
type numericField struct {
	col string
	dst *float64
}

// numbers lê as colunas na ordem dada e para no primeiro erro
func (r row) numbers(fields []numericField) error {
	for _, f := range fields {
		v, err := r.number(f.col)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

func (t *Table) rows(index map[string]int) []row {
	out := make([]row, 0, len(t.Rows))
	for i, values := range t.Rows {
		if isBlank(values) {
			continue
		}
		out = append(out, row{table: t, index: index, values: values, line: i + 1})
	}
	return out
}

func isBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ParseCompanies converte a tabela principal em registros de empresa
func ParseCompanies(t *Table) ([]domain.Company, error) {
	index, err := t.columnIndex(companyColumns)
	if err != nil {
		return nil, err
	}

	rows := t.rows(index)
	companies := make([]domain.Company, 0, len(rows))
	for _, r := range rows {
		c := domain.Company{
			ID:       r.text(ColCompanyID),
			Name:     r.text(ColCompanyName),
			Industry: r.text(ColIndustry),
		}

		err := r.numbers([]numericField{
			{ColEBITDA, &c.EBITDA},
			{ColRevenueMonthly, &c.RevenueMonthly},
			{ColCapitalRaised, &c.CapitalRaised},
			{ColBurnRate, &c.BurnRate},
			{ColRunway, &c.Runway},
			{ColQuickRatio, &c.QuickRatio},
			{ColDebtToEquity, &c.DebtToEquity},
			{ColGrossMargin, &c.GrossMargin},
			{ColNetProfitMargin, &c.NetProfitMargin},
			{ColQuality, &c.Scores.Quality},
			{ColPrice, &c.Scores.Price},
			{ColInnovation, &c.Scores.Innovation},
			{ColCustomerService, &c.Scores.CustomerService},
		})
		if err != nil {
			return nil, err
		}

		c.Record = make([]domain.Field, 0, len(t.Header))
		for i, h := range t.Header {
			value := ""
			if i < len(r.values) {
				value = strings.TrimSpace(r.values[i])
			}
			c.Record = append(c.Record, domain.Field{Name: strings.TrimSpace(h), Value: value})
		}

		companies = append(companies, c)
	}

	return companies, nil
}

// ParseCompetitors converte a tabela de concorrentes
func ParseCompetitors(t *Table) ([]domain.Competitor, error) {
	index, err := t.columnIndex(competitorColumns)
	if err != nil {
		return nil, err
	}

	rows := t.rows(index)
	competitors := make([]domain.Competitor, 0, len(rows))
	for _, r := range rows {
		c := domain.Competitor{CompanyID: r.text(ColCompanyID)}

		err := r.numbers([]numericField{
			{ColCompetitorQuality, &c.Scores.Quality},
			{ColCompetitorPrice, &c.Scores.Price},
			{ColCompetitorInnovation, &c.Scores.Innovation},
			{ColCompetitorCustomerService, &c.Scores.CustomerService},
		})
		if err != nil {
			return nil, err
		}

		competitors = append(competitors, c)
	}

	return competitors, nil
}
