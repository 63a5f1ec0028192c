package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightboard-service/internal/domain/entity"
	"flightboard-service/internal/usecase"
	"flightboard-service/pkg/logger"
	"flightboard-service/pkg/metrics"
	"flightboard-service/pkg/utils"
)

var testMetrics = metrics.NewMetrics("router_test")

type stubSheetRepo struct {
	text string
	err  error
}

func (s *stubSheetRepo) FetchDocument(_ context.Context) (string, error) {
	return s.text, s.err
}

type noopSnapshotRepo struct{}

func (noopSnapshotRepo) Save(_ context.Context, _ *entity.RunSnapshot) error {
	return nil
}

func newTestHandler(text string, err error) http.Handler {
	log := logger.NewNop()
	parser := utils.NewSheetParser(log)
	builder := usecase.NewReportBuilder(&stubSheetRepo{text: text, err: err}, noopSnapshotRepo{}, parser, testMetrics, log)
	return New(builder, log)
}

const sampleSheet = "Flight No,From,To,Dep Time,Arr Time,Travel Linkage,Reg No,Arr Flight,Dep Flight,Arr Date,Arr GMT,Dep Date,Dep GMT\n" +
	"AB123,CityX,CityY,10:00,12:00,N/A,REG1,AB124,AB125,01/06/2024,0900,01/06/2024,1130\n"

func TestDataEndpoint_ServesPayload(t *testing.T) {
	handler := newTestHandler(sampleSheet, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var report entity.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Flights, 1)
	assert.Equal(t, "AB123", report.Flights[0].FlightNumber)
	require.Len(t, report.DailyAirtime, 1)
	assert.Equal(t, entity.StatusRed, report.DailyAirtime[0].Status)
	assert.Equal(t, entity.ColorRed, report.DailyAirtime[0].StatusColor)
}

func TestDataEndpoint_FetchFailureYields500(t *testing.T) {
	handler := newTestHandler("", errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch or process data from the source.", body["error"])
}

func TestDataEndpoint_AllowsCrossOriginRequests(t *testing.T) {
	handler := newTestHandler(sampleSheet, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set("Origin", "http://dashboard.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestHandler(sampleSheet, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler(sampleSheet, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
