package http

import (
	"net/http"

	"scan-analytics/internal/report"
	"scan-analytics/internal/scans"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type reportHandler struct {
	analysisService scans.AnalysisService
	eventsPath      string
}

func NewReportHandler(analysisService scans.AnalysisService, eventsPath string) AppHttpHandler {
	return &reportHandler{
		analysisService: analysisService,
		eventsPath:      eventsPath,
	}
}

// Handle processes GET /report requests. Each request runs an independent
// analysis over the configured events file and returns the same plain-text
// report the CLI prints.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	scanReport, err := h.analysisService.Analyze(r.Context(), h.eventsPath)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	return report.NewReporter(w).Render(scanReport)
}
