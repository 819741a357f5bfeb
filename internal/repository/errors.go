package repository

import (
	"errors"
	"fmt"
)

// Sentinel errors for repository operations.
var (
	// ErrPostLoadFailure indicates that at least one listed document could not
	// be loaded, failing the whole batch.
	ErrPostLoadFailure = errors.New("post load failure")

	// ErrDocumentVanished indicates a document that was listed but no longer
	// exists when loaded.
	ErrDocumentVanished = errors.New("document vanished between listing and loading")

	// ErrInvalidLimit indicates a negative result limit.
	ErrInvalidLimit = errors.New("invalid limit")
)

// PostLoadError reports the document that failed a batch load.
// It matches ErrPostLoadFailure and unwraps to the cause.
type PostLoadError struct {
	Slug string
	Err  error
}

func (e *PostLoadError) Error() string {
	return fmt.Sprintf("load post %q: %v", e.Slug, e.Err)
}

func (e *PostLoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrPostLoadFailure) hold for every PostLoadError.
func (e *PostLoadError) Is(target error) bool {
	return target == ErrPostLoadFailure
}
