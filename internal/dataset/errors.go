package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDataset    = errors.New("dataset has no companies")
	ErrDuplicateID     = errors.New("duplicate company id")
	ErrDuplicateName   = errors.New("duplicate company name")
	ErrCompanyNotFound = errors.New("company not found")
)

// RowError identifica a linha da tabela principal que violou uma restrição
type RowError struct {
	Err   error
	Row   int // posição 1-based entre os registros, sem contar o cabeçalho
	Value string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: %q (row %d)", e.Err.Error(), e.Value, e.Row)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
