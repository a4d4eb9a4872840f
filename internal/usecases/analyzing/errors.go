package analyzing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/startup-dashboard/internal/dataset"
	"github.com/vfg2006/startup-dashboard/pkg/apiErrors"
)

var (
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrCompanyNotFound     = dataset.ErrCompanyNotFound
	ErrEmptyAggregate      = errors.New("aggregate over empty set")
)

// AnalysisError carrega o código de API e a empresa envolvida na falha
type AnalysisError struct {
	Err     error
	Code    string
	Company string
	Details string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func newCompanyError(err error, company string) *AnalysisError {
	code := apiErrors.ErrInternalServer
	switch {
	case errors.Is(err, ErrCompanyNameRequired):
		code = apiErrors.ErrMissingRequiredData
	case errors.Is(err, ErrCompanyNotFound):
		code = apiErrors.ErrCompanyNotFound
	}

	return &AnalysisError{
		Err:     err,
		Code:    code,
		Company: company,
		Details: company,
	}
}

// CodeOf extrai o código de API de um erro de análise
func CodeOf(err error) string {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Code
	}
	return apiErrors.ErrInternalServer
}
