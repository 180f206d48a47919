package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scan-analytics/internal/shared/configs"
	"scan-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	application, err := New(configs.Default())
	require.NoError(t, err)
	return application
}

func TestRun_SingleScanPair(t *testing.T) {
	t.Parallel()

	content := `{"time":"2025-01-15T10:00:00Z","event_type":"scan_start","template_id":"cve-2021-1234","target":"https://example.com","template_path":"cves/cve-2021-1234.yaml","max_requests":50}
{"time":"2025-01-15T10:00:10Z","event_type":"scan_end","template_id":"cve-2021-1234","target":"https://example.com","template_path":"cves/cve-2021-1234.yaml","max_requests":50}
`
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var out strings.Builder
	err := newTestApp(t).Run(context.Background(), path, &out)

	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, "Total events processed: 2")
	assert.Contains(t, got, "Unique scans identified: 1")
	assert.Contains(t, got, "Completed scans: 1")
	assert.Contains(t, got, "Total requests: 50")
	assert.Contains(t, got, "Time span: 10.00 seconds")
	assert.Contains(t, got, "Mean requests per second: 5.000")
	assert.Contains(t, got, "Average scan duration: 10.00 seconds")
}

func TestRun_EmptyFileIsValidOutcome(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	var out strings.Builder
	err := newTestApp(t).Run(context.Background(), path, &out)

	require.NoError(t, err, "empty log must not be treated as an error")
	assert.Contains(t, out.String(), "Total events processed: 0")
	assert.Contains(t, out.String(), "No completed scans found in the data.")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	err := newTestApp(t).Run(context.Background(), filepath.Join(t.TempDir(), "missing.jsonl"), &out)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EVT_1001", svcErr.Code)
	assert.Empty(t, out.String(), "no report output on a fatal error")
}

func TestRun_MalformedLine(t *testing.T) {
	t.Parallel()

	content := `{"time":"2025-01-15T10:00:00Z","event_type":"scan_start","template_id":"t1","target":"https://a","template_path":"p","max_requests":5}
oops
`
	path := filepath.Join(t.TempDir(), "events.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var out strings.Builder
	err := newTestApp(t).Run(context.Background(), path, &out)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EVT_1000", svcErr.Code)
	assert.Empty(t, out.String())
}
