package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/startup-dashboard/pkg/apiErrors"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type companiesResponse struct {
	Companies []string `json:"companies"`
}

// writeAnalysisError traduz o erro do analisador para a resposta de erro da API
func writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	code := analyzing.CodeOf(err)

	logger := log.ForContext(r.Context()).WithError(err).WithField("code", code)
	if apiErrors.StatusOf(code) >= http.StatusInternalServerError {
		logger.Error("Erro ao montar a visão")
	} else {
		logger.Warn("Seleção de empresa inválida")
	}

	apiErr := apiErrors.FromError(err, code)

	var analysisErr *analyzing.AnalysisError
	if errors.As(err, &analysisErr) && analysisErr.Company != "" {
		apiErr.Message = analysisErr.Err.Error()
		apiErr.Details = map[string]string{"company": analysisErr.Company}
	}

	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar a resposta")
	}
}

func ListCompanies(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, companiesResponse{Companies: service.CompanyNames()})
	})
}

func GetOverview(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Overview()
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, view)
	})
}

func GetFinancialHealth(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		view, err := service.FinancialHealth(name)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, view)
	})
}

func GetCompetitiveLandscape(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		view, err := service.CompetitiveLandscape(name)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, view)
	})
}

func GetCompanyData(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		view, err := service.CompanyData(name)
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, view)
	})
}
