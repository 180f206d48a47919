package scans

import (
	"scan-analytics/internal/shared/metrics"
)

var (
	// metricReportsGeneratedTotal counts analysis runs by outcome. The
	// error_code label is empty on success and carries the failing
	// component's stable code otherwise.
	metricReportsGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalysis,
			Name:      "reports_generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
