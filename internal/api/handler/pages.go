package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/vfg2006/startup-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/startup-dashboard/pkg/apiErrors"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	OverviewPath             = "/overview"
	FinancialHealthPath      = "/financial-health"
	CompetitiveLandscapePath = "/competitive-landscape"
	CompanyDataPath          = "/company-data"
)

type pageLink struct {
	Name string
	Path string
}

// Ordem do menu lateral
var pageLinks = []pageLink{
	{Name: "Overview", Path: OverviewPath},
	{Name: "Financial Health", Path: FinancialHealthPath},
	{Name: "Competitive Landscape", Path: CompetitiveLandscapePath},
	{Name: "Company Data", Path: CompanyDataPath},
}

type pageData struct {
	Title     string
	Active    string
	Pages     []pageLink
	Companies []string
	Selected  string
	View      any
	Error     string
}

var pageTemplates = map[string]*template.Template{
	OverviewPath:             parsePage("overview.html"),
	FinancialHealthPath:      parsePage("financial_health.html"),
	CompetitiveLandscapePath: parsePage("competitive_landscape.html"),
	CompanyDataPath:          parsePage("company_data.html"),
}

var errorTemplate = parsePage("error.html")

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

// selectedCompany lê ?company= e usa a primeira empresa da tabela quando ausente
func selectedCompany(r *http.Request, service analyzing.Analyzer) string {
	if name := r.URL.Query().Get("company"); name != "" {
		return name
	}

	names := service.CompanyNames()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data pageData) {
	data.Pages = pageLinks

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("page", data.Active).Error("Erro ao renderizar a página")
		apiErrors.WriteError(w, apiErrors.ErrRenderFailed, "failed to render page", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao escrever a página")
	}
}

// renderPageError mostra o erro dentro do layout; as demais páginas continuam acessíveis
func renderPageError(w http.ResponseWriter, r *http.Request, data pageData, err error) {
	code := analyzing.CodeOf(err)
	status := apiErrors.StatusOf(code)

	logger := log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"page": data.Active,
		"code": code,
	})
	if status >= http.StatusInternalServerError {
		logger.Error("Erro ao montar a página")
	} else {
		logger.Warn("Seleção de empresa inválida")
	}

	data.Title = "Error"
	data.Error = err.Error()
	renderPage(w, r, errorTemplate, status, data)
}

func Index() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, OverviewPath, http.StatusFound)
	})
}

func OverviewPage(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := pageData{
			Title:    "Overview",
			Active:   OverviewPath,
			Selected: r.URL.Query().Get("company"),
		}

		view, err := service.Overview()
		if err != nil {
			renderPageError(w, r, data, err)
			return
		}

		data.View = view
		renderPage(w, r, pageTemplates[OverviewPath], http.StatusOK, data)
	})
}

func FinancialHealthPage(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := companyPageData(r, service, "Financial Health", FinancialHealthPath)

		view, err := service.FinancialHealth(data.Selected)
		if err != nil {
			renderPageError(w, r, data, err)
			return
		}

		data.View = view
		renderPage(w, r, pageTemplates[FinancialHealthPath], http.StatusOK, data)
	})
}

func CompetitiveLandscapePage(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := companyPageData(r, service, "Competitive Landscape", CompetitiveLandscapePath)

		view, err := service.CompetitiveLandscape(data.Selected)
		if err != nil {
			renderPageError(w, r, data, err)
			return
		}

		data.View = view
		renderPage(w, r, pageTemplates[CompetitiveLandscapePath], http.StatusOK, data)
	})
}

func CompanyDataPage(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := companyPageData(r, service, "Company Data", CompanyDataPath)

		view, err := service.CompanyData(data.Selected)
		if err != nil {
			renderPageError(w, r, data, err)
			return
		}

		data.View = view
		renderPage(w, r, pageTemplates[CompanyDataPath], http.StatusOK, data)
	})
}

func companyPageData(r *http.Request, service analyzing.Analyzer, title, path string) pageData {
	return pageData{
		Title:     title,
		Active:    path,
		Companies: service.CompanyNames(),
		Selected:  selectedCompany(r, service),
	}
}
