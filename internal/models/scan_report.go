package models

// ScanReport is the computed result of one analysis run over an events
// file. When CompletedScans is zero the statistics fields are left at
// their zero values and must not be reported.
type ScanReport struct {
	EventsFile     string
	TotalEvents    int
	UniqueScans    int
	CompletedScans int

	TotalRequests   int64
	TimeSpanSeconds float64
	MeanReqsPerSec  float64

	AvgScanDuration float64
	MinScanDuration float64
	MaxScanDuration float64
}

// HasCompletedScans reports whether the statistics fields are populated.
func (r *ScanReport) HasCompletedScans() bool {
	return r.CompletedScans > 0
}
