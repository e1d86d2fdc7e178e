package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandstudio/domain/core"
	"brandstudio/domain/insights"
	"brandstudio/domain/studio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportsAppGetReport(t *testing.T) {
	repo := newMemoryReportRepository()
	report := &studio.Report{
		ID:               core.ReportID("report-1"),
		OriginalFilename: "export.csv",
		Status:           studio.StatusReady,
		Summary:          insights.DashboardSummary{RowCount: 2, TotalTraffic: 30},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	require.NoError(t, repo.Save(context.Background(), report))

	app := NewApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/reports/report-1", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got studio.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, 2, got.Summary.RowCount)
}

func TestReportsAppNotFound(t *testing.T) {
	app := NewApp(newMemoryReportRepository())

	req := httptest.NewRequest(http.MethodGet, "/reports/nope", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportsAppHealth(t *testing.T) {
	app := NewApp(newMemoryReportRepository())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
