package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scan-analytics/internal/models"
	scanmocks "scan-analytics/internal/scans/mocks"
	"scan-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportHandler_Handle_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalysisService := scanmocks.NewMockAnalysisService(ctrl)
	handler := NewReportHandler(mockAnalysisService, "public/events.jsonl")

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rr := httptest.NewRecorder()

	mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), "public/events.jsonl").
		Return(&models.ScanReport{
			EventsFile:      "public/events.jsonl",
			TotalEvents:     2,
			UniqueScans:     1,
			CompletedScans:  1,
			TotalRequests:   50,
			TimeSpanSeconds: 10,
			MeanReqsPerSec:  5,
			AvgScanDuration: 10,
			MinScanDuration: 10,
			MaxScanDuration: 10,
		}, nil)

	err := handler.Handle(rr, req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "Mean requests per second: 5.000")
	assert.Contains(t, rr.Body.String(), "Completed scans: 1")
}

func TestReportHandler_Handle_NoCompletedScans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalysisService := scanmocks.NewMockAnalysisService(ctrl)
	handler := NewReportHandler(mockAnalysisService, "public/events.jsonl")

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rr := httptest.NewRecorder()

	mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), "public/events.jsonl").
		Return(&models.ScanReport{EventsFile: "public/events.jsonl"}, nil)

	err := handler.Handle(rr, req)

	// "no completed scans" is a valid outcome, not an error.
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No completed scans found in the data.")
}

func TestReportHandler_Handle_Error(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalysisService := scanmocks.NewMockAnalysisService(ctrl)
	handler := NewReportHandler(mockAnalysisService, "public/events.jsonl")

	req := httptest.NewRequest(http.MethodGet, "/report", nil)
	rr := httptest.NewRecorder()

	expectedErr := svcerrors.NewNotFoundError("EVT_1001", "file not found: public/events.jsonl", nil)
	mockAnalysisService.EXPECT().
		Analyze(gomock.Any(), "public/events.jsonl").
		Return(nil, expectedErr)

	err := handler.Handle(rr, req)

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "EVT_1001", svcErr.Code)
	// Status should not be set when error occurs
	assert.Equal(t, http.StatusOK, rr.Code)
}
