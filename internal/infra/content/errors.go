package content

import "errors"

var (
	// ErrMissingMetadata indicates a document has no front matter or no title.
	ErrMissingMetadata = errors.New("invalid markdown file: missing required metadata")

	// ErrMalformedMetadata indicates front matter that could not be decoded.
	ErrMalformedMetadata = errors.New("invalid markdown file: malformed metadata")

	// ErrInvalidDate indicates a date value in none of the accepted layouts.
	ErrInvalidDate = errors.New("invalid markdown file: unrecognized date")
)
