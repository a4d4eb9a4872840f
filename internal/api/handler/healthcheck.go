package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/startup-dashboard/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if _, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao responder o healthcheck")
		}
	})
}
