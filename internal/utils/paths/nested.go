// Package paths holds filesystem path helpers.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Overlap reports whether a and b name the same directory or one lies inside
// the other. Both are made absolute first; symlinks are not resolved.
func Overlap(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("resolve %q: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("resolve %q: %w", b, err)
	}
	return within(absA, absB) || within(absB, absA), nil
}

// within reports whether child equals parent or is nested below it.
func within(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
