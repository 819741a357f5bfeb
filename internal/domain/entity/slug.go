package entity

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separatorRun matches runs of whitespace, non-word characters and dashes.
var separatorRun = regexp.MustCompile(`[\s\W-]+`)

// Slug is a normalized, URL-safe identifier. It is comparable with ==.
type Slug struct {
	value string
}

// NewSlugFromText normalizes arbitrary text (usually a title) into a slug:
// lowercase, diacritics removed, separator runs collapsed into single dashes,
// leading and trailing dashes trimmed. Degenerate input yields the empty slug.
func NewSlugFromText(text string) Slug {
	s := strings.ToLower(text)
	s = removeDiacritics(s)
	s = strings.TrimSpace(s)
	s = separatorRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return Slug{value: s}
}

// NewSlugFromFilename derives a slug from a document file name by dropping the
// directory and the file extension. The remaining name is used as is.
func NewSlugFromFilename(name string) Slug {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return Slug{}
	}
	return Slug{value: strings.TrimSuffix(base, filepath.Ext(base))}
}

// String returns the slug value.
func (s Slug) String() string {
	return s.value
}

// IsZero reports whether the slug is empty.
func (s Slug) IsZero() bool {
	return s.value == ""
}

// Equals reports value equality.
func (s Slug) Equals(other Slug) bool {
	return s.value == other.value
}

func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
