// Package respond provides utilities for sending HTTP responses in JSON format.
// Error responses never expose internal details for server-side failures.
package respond

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"portfolio-blog/internal/observability/logging"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers are already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, errorBody{Error: err.Error()})
}

// safeMarkers are substrings of client-caused error messages.
var safeMarkers = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
}

// SafeError writes err as a JSON error. Client errors (4xx) whose message
// looks like a validation failure are returned as is. Everything else is
// logged with the request's logger and answered with a generic message.
func SafeError(ctx context.Context, w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if code < 500 && isSafe(msg) {
		Error(w, code, err)
		return
	}

	logging.FromContext(ctx).Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	JSON(w, code, errorBody{Error: strings.ToLower(http.StatusText(code))})
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range safeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
