package scans

import (
	"scan-analytics/internal/models"
)

//go:generate mockgen -source=aggregator.go -destination=./mocks/aggregator_mock.go -package=mocks
type Aggregator interface {
	// Group folds the ordered event sequence into scan groups keyed by
	// (template_id, target). Map enumeration order carries no meaning.
	Group(events []*models.ScanEvent) map[string]*models.ScanGroup
}

type scanAggregator struct{}

func NewAggregator() Aggregator {
	return &scanAggregator{}
}

// Group performs a single left-to-right pass. The first event seen for a
// key supplies the descriptive fields regardless of its type; repeated
// scan_start/scan_end events overwrite the retained timestamp (last one
// wins, not min/max).
func (a *scanAggregator) Group(events []*models.ScanEvent) map[string]*models.ScanGroup {
	groups := make(map[string]*models.ScanGroup)

	for _, event := range events {
		key := models.ScanKey(event.TemplateID, event.Target)

		group, exists := groups[key]
		if !exists {
			group = models.NewScanGroup(event)
			groups[key] = group
		}

		switch event.EventType {
		case models.EventTypeScanStart:
			t := event.Time
			group.StartTime = &t
		case models.EventTypeScanEnd:
			t := event.Time
			group.EndTime = &t
		}
	}

	return groups
}
