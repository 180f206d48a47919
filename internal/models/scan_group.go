package models

import "time"

// scanKeySeparator joins template ID and target into a group key.
// The unit separator cannot appear in legitimate template IDs or targets,
// so the key is unique per (template_id, target) pair.
const scanKeySeparator = "\x1f"

// ScanGroup aggregates the lifecycle events of one logical scan: one
// template executed against one target. Descriptive fields come from the
// first event seen for the key; StartTime and EndTime hold the most
// recently seen scan_start/scan_end timestamp (repeats overwrite).
type ScanGroup struct {
	TemplateID   string
	Target       string
	TemplatePath string
	MaxRequests  int64
	StartTime    *time.Time
	EndTime      *time.Time
}

// NewScanGroup initializes a group from the first event seen for its key.
func NewScanGroup(event *ScanEvent) *ScanGroup {
	return &ScanGroup{
		TemplateID:   event.TemplateID,
		Target:       event.Target,
		TemplatePath: event.TemplatePath,
		MaxRequests:  event.MaxRequests,
	}
}

// ScanKey returns the group key for a template/target pair.
func ScanKey(templateID, target string) string {
	return templateID + scanKeySeparator + target
}

// Completed reports whether the group has received both a scan_start and
// a scan_end event.
func (g *ScanGroup) Completed() bool {
	return g.StartTime != nil && g.EndTime != nil
}

// Duration returns the scan duration in seconds. Only meaningful for
// completed groups.
func (g *ScanGroup) Duration() float64 {
	if !g.Completed() {
		return 0
	}
	return g.EndTime.Sub(*g.StartTime).Seconds()
}
