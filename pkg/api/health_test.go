package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuemby/cookshow/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthServerRoutes(t *testing.T) {
	metrics.RegisterComponent("api", true, "")
	metrics.RegisterCheck("storage", func() error { return nil })

	hs := NewHealthServer(":0")
	require.NotNil(t, hs.GetHandler())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", expectedStatus: http.StatusOK},
		{name: "health rejects POST", method: http.MethodPost, path: "/health", expectedStatus: http.StatusMethodNotAllowed},
		{name: "ready rejects DELETE", method: http.MethodDelete, path: "/ready", expectedStatus: http.StatusMethodNotAllowed},
		{name: "api routes are not served", method: http.MethodGet, path: "/recipe", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			hs.GetHandler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestReadyReflectsStorage(t *testing.T) {
	metrics.RegisterComponent("api", true, "")
	var pingErr error
	metrics.RegisterCheck("storage", func() error { return pingErr })
	t.Cleanup(func() { metrics.RegisterCheck("storage", func() error { return nil }) })

	handler := NewHealthServer(":0").GetHandler()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	pingErr = errors.New("database not open")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var status metrics.HealthStatus
	require.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	assert.Equal(t, metrics.StatusNotReady, status.Status)
	assert.Contains(t, status.Components["storage"], "database not open")
}

func TestMetricsEndpointExposesCookshowMetrics(t *testing.T) {
	metrics.RateLimitRejects.Add(0)

	w := httptest.NewRecorder()
	NewHealthServer(":0").GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cookshow_rate_limit_rejects_total")
}
