package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanKey_UniquePerPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ScanKey("t1", "https://a"), ScanKey("t1", "https://a"))
	assert.NotEqual(t, ScanKey("t1", "https://a"), ScanKey("t1", "https://b"))
	assert.NotEqual(t, ScanKey("t1", "https://a"), ScanKey("t2", "https://a"))
	// Underscores in ids and targets must not collapse distinct pairs.
	assert.NotEqual(t, ScanKey("t1_x", "y"), ScanKey("t1", "x_y"))
}

func TestScanGroup_Completed(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Second)

	group := &ScanGroup{TemplateID: "t1", Target: "https://a"}
	assert.False(t, group.Completed())

	group.StartTime = &start
	assert.False(t, group.Completed(), "start alone is not a completed scan")

	group.EndTime = &end
	assert.True(t, group.Completed())
	assert.InDelta(t, 10.0, group.Duration(), 1e-9)
}

func TestNewScanGroup_CopiesDescriptiveFields(t *testing.T) {
	t.Parallel()

	event := &ScanEvent{
		Time:         time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		EventType:    EventTypeScanStart,
		TemplateID:   "cve-2021-1234",
		Target:       "https://example.com",
		TemplatePath: "cves/cve-2021-1234.yaml",
		MaxRequests:  50,
	}

	group := NewScanGroup(event)

	assert.Equal(t, "cve-2021-1234", group.TemplateID)
	assert.Equal(t, "https://example.com", group.Target)
	assert.Equal(t, "cves/cve-2021-1234.yaml", group.TemplatePath)
	assert.Equal(t, int64(50), group.MaxRequests)
	assert.Nil(t, group.StartTime, "timestamps are set by the aggregator, not the constructor")
	assert.Nil(t, group.EndTime)
}
