// Package dataset mantém as duas tabelas carregadas na inicialização.
// Depois de New o Dataset é somente leitura e pode ser compartilhado entre requisições.
package dataset

import (
	"github.com/vfg2006/startup-dashboard/internal/domain"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

type Dataset struct {
	companies   []domain.Company
	competitors []domain.Competitor
	names       []string
	byName      map[string]int
	byID        map[string][]int
}

// New valida as tabelas e monta os índices de seleção.
// Nomes e IDs de empresa precisam ser únicos; tabela principal vazia é erro.
func New(companies []domain.Company, competitors []domain.Competitor) (*Dataset, error) {
	if len(companies) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		companies:   companies,
		competitors: competitors,
		names:       make([]string, 0, len(companies)),
		byName:      make(map[string]int, len(companies)),
		byID:        make(map[string][]int),
	}

	ids := make(map[string]struct{}, len(companies))
	for i, c := range companies {
		if _, ok := ids[c.ID]; ok {
			return nil, &RowError{Err: ErrDuplicateID, Row: i + 1, Value: c.ID}
		}
		ids[c.ID] = struct{}{}

		if _, ok := ds.byName[c.Name]; ok {
			return nil, &RowError{Err: ErrDuplicateName, Row: i + 1, Value: c.Name}
		}
		ds.byName[c.Name] = i
		ds.names = append(ds.names, c.Name)
	}

	orphans := 0
	for i, c := range competitors {
		if _, ok := ids[c.CompanyID]; !ok {
			orphans++
		}
		ds.byID[c.CompanyID] = append(ds.byID[c.CompanyID], i)
	}

	if orphans > 0 {
		log.L.WithFields(log.Fields{
			"orphan_competitors": orphans,
		}).Warn("Concorrentes referenciam empresas inexistentes")
	}

	return ds, nil
}

func (d *Dataset) Companies() []domain.Company {
	return d.companies
}

func (d *Dataset) Competitors() []domain.Competitor {
	return d.competitors
}

// CompanyNames retorna os nomes na ordem da tabela, usados no seletor de empresa
func (d *Dataset) CompanyNames() []string {
	return d.names
}

// CompanyByName localiza a empresa pelo nome de exibição
func (d *Dataset) CompanyByName(name string) (domain.Company, error) {
	i, ok := d.byName[name]
	if !ok {
		return domain.Company{}, ErrCompanyNotFound
	}
	return d.companies[i], nil
}

// CompetitorsOf retorna as linhas de concorrentes da empresa, possivelmente nenhuma
func (d *Dataset) CompetitorsOf(companyID string) []domain.Competitor {
	idx := d.byID[companyID]
	out := make([]domain.Competitor, 0, len(idx))
	for _, i := range idx {
		out = append(out, d.competitors[i])
	}
	return out
}
