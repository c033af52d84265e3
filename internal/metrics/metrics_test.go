package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gatherNames(t *testing.T, registry *prometheus.Registry) map[string]bool {
	t.Helper()
	families, err := registry.Gather()
	require.NoError(t, err)
	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	return names
}

func TestNewWithRegistry_RegistersAllMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())
	require.NotNil(t, m)

	names := gatherNames(t, registry)

	// Gauges and counters are visible immediately after registration
	expected := []string{
		"discussion_board_db_connections_open",
		"discussion_board_db_connections_in_use",
		"discussion_board_db_connections_idle",
		"discussion_board_db_connections_max",
		"discussion_board_threads_total",
		"discussion_board_comments_total",
		"discussion_board_users_total",
		"discussion_board_reports_unhandled",
		"discussion_board_thread_created_total",
		"discussion_board_comment_created_total",
		"discussion_board_report_created_total",
		"discussion_board_like_toggled_total",
	}
	for _, name := range expected {
		assert.True(t, names[name], "Registry should contain metric: %s", name)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	m.RecordHTTPRequest("GET", "/api/board/threads", 200, 15*time.Millisecond)
	m.RecordHTTPRequest("GET", "/api/board/threads", 200, 10*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/board/threads", 403, 5*time.Millisecond)

	names := gatherNames(t, registry)
	assert.True(t, names["discussion_board_http_requests_total"])
	assert.True(t, names["discussion_board_http_request_duration_seconds"])
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{200, "2xx"},
		{201, "2xx"},
		{304, "3xx"},
		{404, "4xx"},
		{409, "4xx"},
		{500, "5xx"},
		{101, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, categorizeStatus(tt.code), "status %d", tt.code)
	}
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/api/board/metrics"))
	assert.False(t, ShouldSkipEndpoint("/api/board/threads"))
}

func TestBusinessMetricUpdates(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegistry(registry, zap.NewNop())

	m.IncrementThreadCreated()
	m.IncrementCommentCreated()
	m.IncrementReportCreated()
	m.IncrementLikeToggled()
	m.SetThreadsTotal(42)
	m.SetCommentsTotal(128)
	m.SetUsersTotal(17)
	m.SetReportsUnhandled(3)

	families, err := registry.Gather()
	require.NoError(t, err)

	values := make(map[string]float64)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if metric.GetGauge() != nil {
				values[mf.GetName()] = metric.GetGauge().GetValue()
			}
			if metric.GetCounter() != nil {
				values[mf.GetName()] = metric.GetCounter().GetValue()
			}
		}
	}

	assert.Equal(t, float64(1), values["discussion_board_thread_created_total"])
	assert.Equal(t, float64(42), values["discussion_board_threads_total"])
	assert.Equal(t, float64(128), values["discussion_board_comments_total"])
	assert.Equal(t, float64(17), values["discussion_board_users_total"])
	assert.Equal(t, float64(3), values["discussion_board_reports_unhandled"])
}
