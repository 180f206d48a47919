package eventlog

import (
	"fmt"

	"scan-analytics/internal/shared/svcerrors"
)

// Reader errors
const (
	codeMalformedJSON     = "EVT_1000"
	codeEventsFileMissing = "EVT_1001"
	codeMissingField      = "EVT_1002"
	codeInvalidTimestamp  = "EVT_1003"
	codeInvalidField      = "EVT_1004"

	codeInternalReadFailed = "EVT_9000"
)

// errMalformedJSON returns an error when a line fails to parse as JSON.
func errMalformedJSON(lineNo int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedJSON, fmt.Sprintf("line %d: invalid json: %v", lineNo, cause), cause)
}

// errEventsFileNotFound returns an error when the events file does not exist.
func errEventsFileNotFound(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeEventsFileMissing, fmt.Sprintf("file not found: %s", path), cause)
}

// errEventsFileOpenFailed returns an error when the events file cannot be read.
func errEventsFileOpenFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("eventsFileReadFailed %q: %w", path, cause))
}

// errMissingField returns an error when a required key is absent from a record.
func errMissingField(lineNo int, field string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingField, fmt.Sprintf("line %d: missing field %q", lineNo, field), nil)
}

// errInvalidField returns an error when a field has the wrong JSON type.
func errInvalidField(lineNo int, field, value string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidField, fmt.Sprintf("line %d: invalid value for field %q: %s", lineNo, field, value), nil)
}

// errInvalidTimestamp returns an error when the time field is not ISO-8601.
func errInvalidTimestamp(lineNo int, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimestamp, fmt.Sprintf("line %d: invalid time format: %s", lineNo, value), cause)
}

// asCode extracts the stable error code for metric labels.
func asCode(err error) (string, bool) {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code, true
	}
	return "", false
}
