package text

import "strings"

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Truncate shortens s to at most limit runes, appending Ellipsis when text was
// cut. The ellipsis is not counted against limit. A non-positive limit
// returns s unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 || CountRunes(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + Ellipsis
}

// CollapseSpace replaces every run of whitespace in s with a single space and
// trims both ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
