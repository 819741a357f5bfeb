// Package pagination parses and bounds the result-count limit of listing
// endpoints.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultLimit int // Items returned when the request names no limit
	MaxLimit     int // Maximum allowed items per request
}

// DefaultConfig returns the default pagination configuration.
// Default values: limit=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}
