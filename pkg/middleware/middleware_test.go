package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/startup-dashboard/pkg/log"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
	})
	handler := Cors([]string{"http://localhost:3000"})(next)

	tests := []struct {
		name        string
		method      string
		origin      string
		wantAllowed string
	}{
		{"Origem permitida", http.MethodGet, "http://localhost:3000", "http://localhost:3000"},
		{"Origem desconhecida", http.MethodGet, "http://evil.example.com", ""},
		{"Sem origem", http.MethodGet, "", ""},
		{"Preflight", http.MethodOptions, "http://localhost:3000", "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/overview", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantAllowed, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.method == http.MethodGet {
				// o tipo da resposta é decidido pelo handler
				assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestCacheControl(t *testing.T) {
	handler := CacheControl("no-cache")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/charts/radar.svg", nil))

	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)
	log.SetupTestLogger()

	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/companies/nope/company-data", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Contains(t, buf.String(), "Requisição finalizada com aviso")
	assert.Contains(t, buf.String(), correlationID)
}

func TestLogPanicMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overview", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
	assert.Contains(t, buf.String(), "Erro não tratado na aplicação")
}

// logLine devolve a primeira linha do log que contém msg
func logLine(t *testing.T, output, msg string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, msg) {
			return line
		}
	}
	t.Fatalf("linha de log %q não encontrada em:\n%s", msg, output)
	return ""
}

func TestLoggingMiddleware_PanicKeepsCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	defer logrus.SetOutput(os.Stderr)
	log.SetupTestLogger()

	var correlationID string
	handler := alice.New(LoggingMiddleware(), LogPanicMiddleware()).Then(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/overview", nil))
	})

	require.NotEmpty(t, correlationID)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	panicLine := logLine(t, buf.String(), "Erro não tratado na aplicação")
	assert.Contains(t, panicLine, "correlation_id="+correlationID)

	finishLine := logLine(t, buf.String(), "Requisição finalizada com erro")
	assert.Contains(t, finishLine, "correlation_id="+correlationID)
	assert.Contains(t, finishLine, "status_code=500")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500*time.Microsecond))
	assert.Equal(t, "42 ms", formatDuration(42*time.Millisecond))
	assert.Equal(t, "1.50 s", formatDuration(1500*time.Millisecond))
}
