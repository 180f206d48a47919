package report

import (
	"fmt"
	"io"
	"strings"

	"scan-analytics/internal/models"
)

const separatorWidth = 50

// Reporter renders a scan report as human-readable text. There is no
// machine-readable output mode.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Render writes the full report. Statistics blocks are only printed when
// at least one completed scan exists; otherwise an explicit no-data line
// takes their place.
func (r *Reporter) Render(report *models.ScanReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyzing scan events from: %s\n", report.EventsFile)
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")
	fmt.Fprintf(&b, "Total events processed: %d\n", report.TotalEvents)
	fmt.Fprintf(&b, "Unique scans identified: %d\n", report.UniqueScans)
	fmt.Fprintf(&b, "Completed scans: %d\n", report.CompletedScans)

	if !report.HasCompletedScans() {
		b.WriteString("No completed scans found in the data.\n")
		_, err := io.WriteString(r.out, b.String())
		return err
	}

	b.WriteString("\nResults:\n")
	fmt.Fprintf(&b, "Total requests: %d\n", report.TotalRequests)
	fmt.Fprintf(&b, "Time span: %.2f seconds\n", report.TimeSpanSeconds)
	fmt.Fprintf(&b, "Mean requests per second: %.3f\n", report.MeanReqsPerSec)

	b.WriteString("\nAdditional Statistics:\n")
	fmt.Fprintf(&b, "Average scan duration: %.2f seconds\n", report.AvgScanDuration)
	fmt.Fprintf(&b, "Shortest scan: %.2f seconds\n", report.MinScanDuration)
	fmt.Fprintf(&b, "Longest scan: %.2f seconds\n", report.MaxScanDuration)

	_, err := io.WriteString(r.out, b.String())
	return err
}
