// Package content reads Markdown documents with front-matter metadata from a
// content directory and turns them into raw records: a metadata struct plus
// the rendered HTML body, keyed by the file-name slug.
package content

import (
	"time"

	"portfolio-blog/internal/domain/entity"
)

// Metadata is the front matter of a document. Optional keys are nil when the
// document does not declare them.
type Metadata struct {
	Title     string
	Tags      []string
	UpdatedAt *time.Time
	Excerpt   *string
	Project   *string
	RepoURL   *string
	Next      *string
	Prev      *string
}

// Parsed is the output of Parser.Parse.
type Parsed struct {
	Metadata Metadata
	Body     string
}

// RawPost is a parsed document paired with the slug derived from its file name.
type RawPost struct {
	FileName entity.Slug
	Metadata Metadata
	Content  string
}
