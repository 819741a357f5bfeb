package post

import (
	"context"
	"errors"
	"net/http"

	"portfolio-blog/internal/handler/http/respond"
	"portfolio-blog/internal/repository"
)

var errPostNotFound = errors.New("post not found")

// statusFor maps a query error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrInvalidLimit):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeQueryError(w http.ResponseWriter, r *http.Request, err error) {
	respond.SafeError(r.Context(), w, statusFor(err), err)
}
