package loader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadCSV lê um arquivo delimitado por vírgula com linha de cabeçalho
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader: open csv")
	}
	defer f.Close()

	return readCSV(path, f)
}

func readCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "loader: read csv %s", name)
	}

	if len(records) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, name)
	}

	// BOM gerado por planilhas no primeiro campo do cabeçalho
	if len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\uFEFF")
	}

	return &Table{Name: name, Header: records[0], Rows: records[1:]}, nil
}
