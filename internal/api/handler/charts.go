package handler

import (
	"bytes"
	"net/http"

	"github.com/vfg2006/startup-dashboard/internal/charts"
	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/startup-dashboard/pkg/apiErrors"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

const svgContentType = "image/svg+xml"

// writeSVG renderiza em buffer para que uma falha no meio do desenho ainda vire erro HTTP
func writeSVG(w http.ResponseWriter, r *http.Request, render func(buf *bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao renderizar o gráfico")
		apiErrors.WriteError(w, apiErrors.ErrRenderFailed, "failed to render chart", nil)
		return
	}

	w.Header().Set("Content-Type", svgContentType)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever o gráfico")
	}
}

func SectorsChart(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.Overview()
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeSVG(w, r, func(buf *bytes.Buffer) error {
			return charts.RenderBarChart(buf, "Number of Companies by Industry", view.SectorBars())
		})
	})
}

func RadarChart(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.CompetitiveLandscape(selectedCompany(r, service))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeSVG(w, r, func(buf *bytes.Buffer) error {
			return charts.RenderRadar(buf, view)
		})
	})
}

func CompanyMetricsChart(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		view, err := service.CompanyData(selectedCompany(r, service))
		if err != nil {
			writeAnalysisError(w, r, err)
			return
		}

		writeSVG(w, r, func(buf *bytes.Buffer) error {
			return charts.RenderBarChart(buf, "Performance Metrics Overview", view.Chart)
		})
	})
}
