package entity

import (
	"fmt"
	"regexp"
)

// maxURLLength defines the maximum allowed length for URLs.
const maxURLLength = 2048

// urlPattern accepts an optional http(s) scheme, a dotted host ending in a TLD of
// at least two letters, an optional port and an optional path.
var urlPattern = regexp.MustCompile(`^(https?://)?(([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,})(:\d{2,5})?(/[^\s]*)?$`)

// URL is a validated URL value object. The zero value is the absent URL.
type URL struct {
	value string
}

// NewURL validates raw and returns it as a URL.
// Returns a ValidationError wrapping ErrInvalidURL when raw does not match the pattern.
func NewURL(raw string) (URL, error) {
	if err := ValidateURL(raw); err != nil {
		return URL{}, err
	}
	return URL{value: raw}, nil
}

// ValidateURL reports whether raw is acceptable as a URL value.
func ValidateURL(raw string) error {
	if raw == "" {
		return &ValidationError{Field: "url", Message: "URL is required", Err: ErrInvalidURL}
	}
	if len(raw) > maxURLLength {
		return &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
			Err:     ErrInvalidURL,
		}
	}
	if !urlPattern.MatchString(raw) {
		return &ValidationError{Field: "url", Message: fmt.Sprintf("%q is not a valid URL", raw), Err: ErrInvalidURL}
	}
	return nil
}

// String returns the URL as given at construction.
func (u URL) String() string {
	return u.value
}

// IsZero reports whether the URL is absent.
func (u URL) IsZero() bool {
	return u.value == ""
}
