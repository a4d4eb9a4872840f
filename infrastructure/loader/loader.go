package loader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/startup-dashboard/internal/dataset"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Loader carrega as duas tabelas uma única vez, na inicialização do processo
type Loader interface {
	Load(ctx context.Context) (*dataset.Dataset, error)
}

// FileLoader lê as tabelas de arquivos .csv ou .xlsx
type FileLoader struct {
	StartupPath     string
	CompetitorsPath string
}

func NewFileLoader(startupPath, competitorsPath string) *FileLoader {
	return &FileLoader{
		StartupPath:     startupPath,
		CompetitorsPath: competitorsPath,
	}
}

// ReadTable escolhe o leitor pela extensão do arquivo
func ReadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return ReadCSV(path)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, errors.Wrap(ErrUnsupportedFormat, path)
	}
}

func (l *FileLoader) Load(ctx context.Context) (*dataset.Dataset, error) {
	primary, err := ReadTable(l.StartupPath)
	if err != nil {
		return nil, err
	}

	competitors, err := ReadTable(l.CompetitorsPath)
	if err != nil {
		return nil, err
	}

	return build(ctx, primary, competitors)
}

func build(ctx context.Context, primary, competitors *Table) (*dataset.Dataset, error) {
	companies, err := ParseCompanies(primary)
	if err != nil {
		return nil, err
	}

	rivals, err := ParseCompetitors(competitors)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.New(companies, rivals)
	if err != nil {
		return nil, errors.Wrap(err, "loader: build dataset")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"companies":   len(companies),
		"competitors": len(rivals),
		"primary":     primary.Name,
	}).Info("Conjunto de dados carregado")

	return ds, nil
}
