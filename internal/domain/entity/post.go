// Package entity defines the core domain entities and value objects of the blog.
// It contains the Post entity, the Slug, URL, Project and PostRelated value
// objects, and the domain-specific validation errors.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PostProps holds the state a Post is constructed from.
type PostProps struct {
	Title     string
	Slug      Slug
	Body      string
	Excerpt   string
	UpdatedAt time.Time
	Project   Project
	Related   PostRelated
	Tags      []string
}

// Post represents a published article. It is immutable once built.
// Identity is an opaque UUID, distinct from the human-readable slug.
type Post struct {
	id        uuid.UUID
	title     string
	slug      Slug
	body      string
	excerpt   string
	updatedAt time.Time
	project   Project
	related   PostRelated
	tags      []string
}

// NewPost builds a Post from props. When id is uuid.Nil a random identity is
// generated. Returns a ValidationError if the title is blank.
func NewPost(props PostProps, id uuid.UUID) (*Post, error) {
	if strings.TrimSpace(props.Title) == "" {
		return nil, &ValidationError{Field: "title", Message: "title is required"}
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Post{
		id:        id,
		title:     props.Title,
		slug:      props.Slug,
		body:      props.Body,
		excerpt:   props.Excerpt,
		updatedAt: props.UpdatedAt,
		project:   props.Project,
		related:   props.Related,
		tags:      slices.Clone(props.Tags),
	}, nil
}

func (p *Post) ID() uuid.UUID { return p.id }
func (p *Post) Title() string { return p.title }
func (p *Post) Slug() Slug { return p.slug }
func (p *Post) Body() string { return p.body }
func (p *Post) Excerpt() string { return p.excerpt }
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }
func (p *Post) Project() Project { return p.project }
func (p *Post) Related() PostRelated { return p.related }

// Tags returns a copy of the post's tags in declaration order.
func (p *Post) Tags() []string {
	return slices.Clone(p.tags)
}

// HasTag reports whether any of the post's tags has the same canonical form as tag.
// The canonical form of a tag is its slug, so "Node JS", "node-js" and "Node.js" match.
func (p *Post) HasTag(tag string) bool {
	want := NewSlugFromText(tag)
	if want.IsZero() {
		return false
	}
	for _, t := range p.tags {
		if NewSlugFromText(t) == want {
			return true
		}
	}
	return false
}

// SortByRecency orders posts by UpdatedAt, most recent first.
// Posts with equal timestamps keep their relative order.
func SortByRecency(posts []*Post) {
	slices.SortStableFunc(posts, func(a, b *Post) int {
		return b.updatedAt.Compare(a.updatedAt)
	})
}

// FilterByTag returns the posts that carry tag, keeping their order.
func FilterByTag(posts []*Post, tag string) []*Post {
	out := make([]*Post, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(tag) {
			out = append(out, p)
		}
	}
	return out
}
