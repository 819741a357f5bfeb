package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParseLimit reads the limit query parameter.
// Returns config.DefaultLimit when the parameter is absent, and an error
// when it is not an integer between 1 and config.MaxLimit.
func ParseLimit(r *http.Request, config Config) (int, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return config.DefaultLimit, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > config.MaxLimit {
		return 0, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
	}
	return limit, nil
}
