package scans

import (
	"testing"
	"time"

	"scan-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(second int) time.Time {
	return time.Date(2025, 1, 15, 10, 0, second, 0, time.UTC)
}

func event(eventType, templateID, target string, t time.Time, maxRequests int64) *models.ScanEvent {
	return &models.ScanEvent{
		Time:         t,
		EventType:    eventType,
		TemplateID:   templateID,
		Target:       target,
		TemplatePath: "templates/" + templateID + ".yaml",
		MaxRequests:  maxRequests,
	}
}

func TestAggregator_Group_StartEndPair(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	events := []*models.ScanEvent{
		event(models.EventTypeScanStart, "cve-2021-1234", "https://a", ts(0), 50),
		event(models.EventTypeScanEnd, "cve-2021-1234", "https://a", ts(10), 50),
	}

	groups := aggregator.Group(events)

	require.Len(t, groups, 1)
	group := groups[models.ScanKey("cve-2021-1234", "https://a")]
	require.NotNil(t, group)
	assert.True(t, group.Completed())
	assert.Equal(t, ts(0), *group.StartTime)
	assert.Equal(t, ts(10), *group.EndTime)
	assert.Equal(t, int64(50), group.MaxRequests)
	assert.Equal(t, "templates/cve-2021-1234.yaml", group.TemplatePath)
}

func TestAggregator_Group_SameKeyRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	forward := aggregator.Group([]*models.ScanEvent{
		event(models.EventTypeScanStart, "t1", "https://a", ts(0), 10),
		event(models.EventTypeScanEnd, "t1", "https://a", ts(5), 10),
	})
	reversed := aggregator.Group([]*models.ScanEvent{
		event(models.EventTypeScanEnd, "t1", "https://a", ts(5), 10),
		event(models.EventTypeScanStart, "t1", "https://a", ts(0), 10),
	})

	require.Len(t, forward, 1)
	require.Len(t, reversed, 1)

	key := models.ScanKey("t1", "https://a")
	assert.True(t, forward[key].Completed())
	assert.True(t, reversed[key].Completed())
	assert.Equal(t, *forward[key].StartTime, *reversed[key].StartTime)
	assert.Equal(t, *forward[key].EndTime, *reversed[key].EndTime)
}

func TestAggregator_Group_RepeatedStartOverwrites(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	// Last scan_start wins, even when it is later than an earlier one.
	events := []*models.ScanEvent{
		event(models.EventTypeScanStart, "t1", "https://a", ts(0), 10),
		event(models.EventTypeScanStart, "t1", "https://a", ts(3), 10),
		event(models.EventTypeScanEnd, "t1", "https://a", ts(10), 10),
	}

	groups := aggregator.Group(events)

	group := groups[models.ScanKey("t1", "https://a")]
	require.NotNil(t, group)
	assert.Equal(t, ts(3), *group.StartTime, "overwrite semantics, not min")
	assert.Equal(t, ts(10), *group.EndTime)
}

func TestAggregator_Group_OtherEventTypeOnlyInitializes(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	events := []*models.ScanEvent{
		event("scan_progress", "t1", "https://a", ts(0), 25),
		event(models.EventTypeScanStart, "t1", "https://a", ts(1), 99),
	}

	groups := aggregator.Group(events)

	group := groups[models.ScanKey("t1", "https://a")]
	require.NotNil(t, group)
	// Descriptive fields come from the first event for the key.
	assert.Equal(t, int64(25), group.MaxRequests)
	assert.Equal(t, ts(1), *group.StartTime)
	assert.Nil(t, group.EndTime)
	assert.False(t, group.Completed())
}

func TestAggregator_Group_DistinctTargetsDistinctGroups(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	events := []*models.ScanEvent{
		event(models.EventTypeScanStart, "t1", "https://a", ts(0), 10),
		event(models.EventTypeScanStart, "t1", "https://b", ts(0), 10),
		event(models.EventTypeScanStart, "t2", "https://a", ts(0), 10),
	}

	groups := aggregator.Group(events)

	assert.Len(t, groups, 3)
}

func TestAggregator_Group_EmptyInput(t *testing.T) {
	t.Parallel()

	aggregator := NewAggregator()

	groups := aggregator.Group(nil)

	assert.Empty(t, groups)
}
