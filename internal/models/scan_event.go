package models

import "time"

// Event types emitted by the scanner for scan lifecycle activity.
// Other values may appear in the log and are carried through unchanged.
const (
	EventTypeScanStart = "scan_start"
	EventTypeScanEnd   = "scan_end"
)

// ScanEvent is one parsed record from the events file. Events are
// immutable once parsed and have no identity beyond their field values.
type ScanEvent struct {
	Time         time.Time
	EventType    string
	TemplateID   string
	Target       string
	TemplatePath string
	MaxRequests  int64
}
