package eventlog

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"scan-analytics/internal/models"
	"scan-analytics/internal/shared/loggers"
	"scan-analytics/internal/shared/metrics"
)

// maxLineBytes bounds a single event record; nuclei events are well under this.
const maxLineBytes = 1 * 1024 * 1024

// Required string fields of every event record. max_requests is optional
// and defaults to 1 when absent.
var requiredStringFields = []string{
	fieldTime,
	fieldEventType,
	fieldTemplateID,
	fieldTarget,
	fieldTemplatePath,
}

const (
	fieldTime         = "time"
	fieldEventType    = "event_type"
	fieldTemplateID   = "template_id"
	fieldTarget       = "target"
	fieldTemplatePath = "template_path"
	fieldMaxRequests  = "max_requests"
)

const defaultMaxRequests = 1

//go:generate mockgen -source=reader.go -destination=./mocks/reader_mock.go -package=mocks
type Reader interface {
	// ReadAll parses the events file into an ordered event slice reflecting
	// file line order. Blank lines are skipped; the first malformed line
	// aborts the whole read.
	ReadAll(ctx context.Context, path string) ([]*models.ScanEvent, error)
}

type jsonlReader struct{}

func NewReader() Reader {
	return &jsonlReader{}
}

func (r *jsonlReader) ReadAll(ctx context.Context, path string) ([]*models.ScanEvent, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldEventsFile, path).Msg("started reading events file")

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			svcErr := errEventsFileNotFound(path, err)
			metricEventLogReadsTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		svcErr := errEventsFileOpenFailed(path, err)
		metricEventLogReadsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}
	defer file.Close()

	var events []*models.ScanEvent
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		event, err := r.parseLine(line, lineNo)
		if err != nil {
			if svcErr, ok := asCode(err); ok {
				metricEventLogReadsTotal.WithLabelValues(svcErr).Inc()
			}
			return nil, err
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		svcErr := errEventsFileOpenFailed(path, err)
		metricEventLogReadsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricEventLogReadsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricEventsParsedTotal.Add(float64(len(events)))
	logger.Debug().Str(loggers.FieldEventsFile, path).Msgf("read %d events", len(events))
	return events, nil
}

// parseLine parses one non-blank line as a standalone JSON event object.
func (r *jsonlReader) parseLine(line string, lineNo int) (*models.ScanEvent, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(line), &obj); err != nil {
		return nil, errMalformedJSON(lineNo, err)
	}

	fields := make(map[string]string, len(requiredStringFields))
	for _, name := range requiredStringFields {
		val, ok := obj[name]
		if !ok {
			return nil, errMissingField(lineNo, name)
		}
		str, ok := val.(string)
		if !ok {
			return nil, errInvalidField(lineNo, name, fmt.Sprintf("%v", val))
		}
		fields[name] = str
	}

	eventTime, err := r.parseTime(fields[fieldTime], lineNo)
	if err != nil {
		return nil, err
	}

	maxRequests := int64(defaultMaxRequests)
	if val, ok := obj[fieldMaxRequests]; ok {
		num, ok := val.(float64)
		if !ok {
			return nil, errInvalidField(lineNo, fieldMaxRequests, fmt.Sprintf("%v", val))
		}
		maxRequests = int64(num)
	}

	return &models.ScanEvent{
		Time:         eventTime,
		EventType:    fields[fieldEventType],
		TemplateID:   fields[fieldTemplateID],
		Target:       fields[fieldTarget],
		TemplatePath: fields[fieldTemplatePath],
		MaxRequests:  maxRequests,
	}, nil
}

// parseTime parses an ISO-8601 timestamp. A trailing Z is the UTC offset;
// naive timestamps without an offset are interpreted as UTC.
func (r *jsonlReader) parseTime(timeStr string, lineNo int) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse("2006-01-02T15:04:05", timeStr)
	if err == nil {
		return t, nil
	}

	return time.Time{}, errInvalidTimestamp(lineNo, timeStr, err)
}
