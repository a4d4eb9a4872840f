package loader

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX lê a primeira planilha do arquivo; a primeira linha é o cabeçalho
func ReadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader: open xlsx")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "loader: read sheet %s", sheets[0])
	}

	if len(rows) == 0 {
		return nil, errors.Wrap(ErrEmptyTable, path)
	}

	return &Table{Name: path, Header: rows[0], Rows: rows[1:]}, nil
}
