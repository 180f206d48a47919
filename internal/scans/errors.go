package scans

import (
	"fmt"

	"scan-analytics/internal/shared/svcerrors"
)

const (
	codeInternalAnalysisFailed = "SCN_9000"
)

// errInternalAnalysisFailed returns an error when the analysis pipeline
// fails for a reason that did not produce a ServiceError of its own.
func errInternalAnalysisFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAnalysisFailed, fmt.Errorf("analysisFailed: %w", cause))
}
