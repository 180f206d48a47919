package eventlog

import (
	"scan-analytics/internal/shared/metrics"
)

var (
	// metricEventLogReadsTotal counts whole-file read attempts by outcome.
	// The error_code label is empty on success and carries the EVT_* code
	// of the first fatal parse error otherwise.
	metricEventLogReadsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEventLog,
			Name:      "reads_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricEventsParsedTotal counts successfully parsed event records.
	metricEventsParsedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubEventLog,
			Name:      "events_parsed_total",
		},
	)
)
