// Package http provides the HTTP handlers and middleware of the blog API:
// probes, metrics, request logging, panic recovery and the route table.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portfolio-blog/internal/handler/http/respond"
)

// Pinger reports whether a dependency can serve requests.
// content.Reader implements it for the content directory.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`            // "healthy" or "unhealthy"
	Message string `json:"message,omitempty"` // Optional status message
}

// HealthHandler reports the status of the content directory as JSON.
type HealthHandler struct {
	Content Pinger
	Version string
}

// ServeHTTP returns 200 OK if every check passes, or 503 Service Unavailable.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	check := CheckStatus{Status: "healthy"}
	if err := ping(ctx, h.Content); err != nil {
		check = CheckStatus{Status: "unhealthy", Message: err.Error()}
	}

	resp := HealthResponse{
		Status:    check.Status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{"content": check},
		Version:   h.Version,
	}
	code := http.StatusOK
	if check.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}

// ReadyHandler handles readiness probe requests.
// It checks that the content directory is readable.
type ReadyHandler struct {
	Content Pinger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := ping(ctx, h.Content); err != nil {
		http.Error(w, "content not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	writePlain(w, "ready")
}

// LiveHandler handles liveness probe requests.
// It always returns 200 OK while the process can respond.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writePlain(w, "alive")
}

func ping(ctx context.Context, p Pinger) error {
	if p == nil {
		return errNotConfigured
	}
	return p.Ping(ctx)
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("probe: failed to write response", slog.Any("error", err))
	}
}
