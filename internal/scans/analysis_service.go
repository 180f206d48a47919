package scans

import (
	"context"

	"scan-analytics/internal/eventlog"
	"scan-analytics/internal/models"
	"scan-analytics/internal/shared/loggers"
	"scan-analytics/internal/shared/metrics"
	"scan-analytics/internal/shared/svcerrors"
)

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// Analyze reads the events file at path and produces the scan report.
	Analyze(ctx context.Context, path string) (*models.ScanReport, error)
}

type analysisService struct {
	reader     eventlog.Reader
	aggregator Aggregator
}

func NewAnalysisService(reader eventlog.Reader, aggregator Aggregator) AnalysisService {
	return &analysisService{reader: reader, aggregator: aggregator}
}

func (s *analysisService) Analyze(ctx context.Context, path string) (*models.ScanReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldEventsFile, path).Msg("started analyzing events file")

	events, err := s.reader.ReadAll(ctx, path)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricReportsGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		svcErr := errInternalAnalysisFailed(err)
		metricReportsGeneratedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	groups := s.aggregator.Group(events)
	completed := CompletedGroups(groups)

	report := &models.ScanReport{
		EventsFile:     path,
		TotalEvents:    len(events),
		UniqueScans:    len(groups),
		CompletedScans: len(completed),
	}

	// Duration statistics are undefined for zero completed scans; the
	// reporter prints the no-data message instead.
	if len(completed) > 0 {
		report.TotalRequests, report.TimeSpanSeconds, report.MeanReqsPerSec = CompletedScanRate(completed)
		report.AvgScanDuration, report.MinScanDuration, report.MaxScanDuration = ScanDurationStats(completed)
	}

	metricReportsGeneratedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Debug().
		Str(loggers.FieldEventsFile, path).
		Msgf("analysis complete: %d events, %d unique scans, %d completed", report.TotalEvents, report.UniqueScans, report.CompletedScans)

	return report, nil
}
