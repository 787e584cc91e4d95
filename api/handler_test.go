package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcfs-simulator/config"
	"fcfs-simulator/internal/metrics"
	"fcfs-simulator/internal/responses"
)

func newTestApp(t *testing.T, cfg *config.SchedulerConfig) *fiber.App {
	t.Helper()
	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(registry)
	require.NoError(t, err)
	return NewApp(NewSchedulerHandlerImpl(cfg, recorder), registry)
}

func postFCFS(t *testing.T, app *fiber.App, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fcfs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestFirstComeFirstServe(t *testing.T) {
	app := newTestApp(t, &config.SchedulerConfig{})

	resp, body := postFCFS(t, app, `{"jobs":[
		{"process_id":4,"arrival_time":4,"burst_time":3},
		{"process_id":1,"arrival_time":0,"burst_time":9},
		{"process_id":2,"arrival_time":1,"burst_time":4},
		{"process_id":3,"arrival_time":2,"burst_time":9}]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &result))
	require.Len(t, result.Details, 4)
	assert.Equal(t, 1, result.Details[0].ProcessId)
	assert.Equal(t, 4, result.Details[3].ProcessId)
	assert.Equal(t, 22, result.Details[3].ResponseTime)
	assert.Equal(t, 25, result.TotalTime)
}

func TestFirstComeFirstServe_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		error  string
	}{
		{name: "malformed", body: `{"jobs":`, status: fiber.StatusBadRequest, error: "invalid request format"},
		{name: "empty", body: `{"jobs":[]}`, status: fiber.StatusUnprocessableEntity, error: "no processes to schedule"},
		{
			name:   "zero burst",
			body:   `{"jobs":[{"process_id":2,"arrival_time":0,"burst_time":0}]}`,
			status: fiber.StatusUnprocessableEntity,
			error:  "process 2: burst time must be positive, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &config.SchedulerConfig{})
			resp, body := postFCFS(t, app, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)

			var result map[string]string
			require.NoError(t, json.Unmarshal(body, &result))
			assert.Equal(t, tt.error, result["error"])
		})
	}
}

func TestSamples(t *testing.T) {
	app := newTestApp(t, &config.SchedulerConfig{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/samples", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result []responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result, 3)
	assert.Equal(t, "q1", result[0].Name)
	assert.Equal(t, 70, result[1].TotalTime)
}

func TestSamples_InvalidBatchFile(t *testing.T) {
	app := newTestApp(t, &config.SchedulerConfig{BatchesFile: filepath.Join("testdata", "batches.yaml")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/samples", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	app := newTestApp(t, &config.SchedulerConfig{})
	postFCFS(t, app, `{"jobs":[{"process_id":1,"arrival_time":5,"burst_time":3}]}`)
	postFCFS(t, app, `{"jobs":[]}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fcfs_batches_scheduled_total 1")
	assert.Contains(t, string(body), `fcfs_schedule_errors_total{reason="empty_input"} 1`)
}
