package scans

import (
	"time"

	"scan-analytics/internal/models"
)

// The two request-rate methods below compute superficially similar but
// numerically different quantities and are intentionally kept as
// independent, separately named functions. FlatMeanRequestRate counts
// every event's budget (duplicates included); CompletedScanRate counts
// each completed scan's budget exactly once.

// FlatMeanRequestRate computes the mean requests/second over a raw event
// stream without grouping: the sum of every event's max_requests divided
// by the span between the earliest and latest event timestamp. Returns 0
// for fewer than two events. A zero span yields the raw request total as
// an instantaneous rate.
func FlatMeanRequestRate(events []*models.ScanEvent) float64 {
	if len(events) < 2 {
		return 0.0
	}

	var totalRequests int64
	minTime := events[0].Time
	maxTime := events[0].Time
	for _, event := range events {
		totalRequests += event.MaxRequests
		if event.Time.Before(minTime) {
			minTime = event.Time
		}
		if event.Time.After(maxTime) {
			maxTime = event.Time
		}
	}

	totalSeconds := maxTime.Sub(minTime).Seconds()
	if totalSeconds == 0 {
		return float64(totalRequests)
	}

	return float64(totalRequests) / totalSeconds
}

// CompletedScanRate computes the primary reported statistic over completed
// scans only: each completed group's max_requests counted once, divided by
// the span between the global minimum and maximum of all completed groups'
// start/end timestamps. The zero-span fallback matches FlatMeanRequestRate.
// Must only be called with at least one completed group.
func CompletedScanRate(completed []*models.ScanGroup) (totalRequests int64, spanSeconds float64, rate float64) {
	var minTime, maxTime time.Time
	for i, group := range completed {
		totalRequests += group.MaxRequests

		if i == 0 {
			minTime = *group.StartTime
			maxTime = *group.StartTime
		}
		for _, t := range []time.Time{*group.StartTime, *group.EndTime} {
			if t.Before(minTime) {
				minTime = t
			}
			if t.After(maxTime) {
				maxTime = t
			}
		}
	}

	spanSeconds = maxTime.Sub(minTime).Seconds()
	if spanSeconds == 0 {
		return totalRequests, spanSeconds, float64(totalRequests)
	}

	return totalRequests, spanSeconds, float64(totalRequests) / spanSeconds
}

// ScanDurationStats computes the arithmetic mean, minimum, and maximum
// per-scan duration in seconds over completed groups. Must only be called
// with at least one completed group.
func ScanDurationStats(completed []*models.ScanGroup) (avg, min, max float64) {
	var sum float64
	for i, group := range completed {
		duration := group.Duration()
		sum += duration
		if i == 0 {
			min = duration
			max = duration
			continue
		}
		if duration < min {
			min = duration
		}
		if duration > max {
			max = duration
		}
	}

	avg = sum / float64(len(completed))
	return avg, min, max
}

// CompletedGroups filters the grouped scans to those with both a recorded
// start and end event.
func CompletedGroups(groups map[string]*models.ScanGroup) []*models.ScanGroup {
	completed := make([]*models.ScanGroup, 0, len(groups))
	for _, group := range groups {
		if group.Completed() {
			completed = append(completed, group)
		}
	}
	return completed
}
