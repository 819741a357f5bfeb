package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		content        Pinger
		expectedStatus int
		expectHealthy  bool
	}{
		{name: "healthy content dir", content: stubPinger{}, expectedStatus: http.StatusOK, expectHealthy: true},
		{name: "unreadable content dir", content: stubPinger{err: errors.New("stat content dir: no such file")}, expectedStatus: http.StatusServiceUnavailable},
		{name: "not configured", content: nil, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &HealthHandler{Content: tt.content, Version: "test-version"}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			var response HealthResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			if tt.expectHealthy {
				assert.Equal(t, "healthy", response.Status)
			} else {
				assert.Equal(t, "unhealthy", response.Status)
				assert.NotEmpty(t, response.Checks["content"].Message)
			}
			assert.Equal(t, "test-version", response.Version)
			assert.NotEmpty(t, response.Timestamp)
		})
	}
}

func TestReadyHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&ReadyHandler{Content: stubPinger{}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())

	rec = httptest.NewRecorder()
	(&ReadyHandler{Content: stubPinger{err: errors.New("gone")}}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "content not ready")
}

func TestLiveHandler_ServeHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	(&LiveHandler{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
