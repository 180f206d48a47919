package http

import (
	"net/http"

	"scan-analytics/internal/scans"
	"scan-analytics/internal/shared/loggers"
	"scan-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(analysisService scans.AnalysisService, eventsPath string, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	reportHandler := NewReportHandler(analysisService, eventsPath)

	// Routes
	router.Get("/report", errorHandlingAdapter(reportHandler))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
