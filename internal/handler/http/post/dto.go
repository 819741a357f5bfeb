// Package post provides HTTP handlers for the read-only blog post endpoints.
// It serves recent posts, single posts, posts by tag and the slug index as JSON.
package post

import (
	"time"

	"portfolio-blog/internal/domain/entity"
)

// ProjectDTO is the project a post belongs to.
type ProjectDTO struct {
	Title   string `json:"title"`
	RepoURL string `json:"repoUrl,omitempty"`
}

// RelatedDTO holds the previous and next post slugs.
type RelatedDTO struct {
	Prev string `json:"prev,omitempty"`
	Next string `json:"next,omitempty"`
}

// SummaryDTO is the listing representation of a post.
type SummaryDTO struct {
	ID        string      `json:"id"`
	Slug      string      `json:"slug"`
	Title     string      `json:"title"`
	Excerpt   string      `json:"excerpt"`
	UpdatedAt time.Time   `json:"updatedAt"`
	Tags      []string    `json:"tags"`
	Project   *ProjectDTO `json:"project,omitempty"`
}

// DetailDTO is the full representation of a post including its rendered body.
type DetailDTO struct {
	SummaryDTO
	Body    string     `json:"body"`
	Related RelatedDTO `json:"related"`
}

// ListResponse is returned by the recent posts endpoint.
type ListResponse struct {
	Posts []SummaryDTO `json:"posts"`
}

// TagResponse is returned by the posts-by-tag endpoint. Tag is the display title.
type TagResponse struct {
	Tag   string       `json:"tag"`
	Slug  string       `json:"slug"`
	Posts []SummaryDTO `json:"posts"`
}

// SlugsResponse is returned by the slug index endpoint.
type SlugsResponse struct {
	Slugs []string `json:"slugs"`
}

// ToSummary converts a post to its listing representation.
func ToSummary(p *entity.Post) SummaryDTO {
	tags := p.Tags()
	if tags == nil {
		tags = []string{}
	}
	out := SummaryDTO{
		ID:        p.ID().String(),
		Slug:      p.Slug().String(),
		Title:     p.Title(),
		Excerpt:   p.Excerpt(),
		UpdatedAt: p.UpdatedAt(),
		Tags:      tags,
	}
	if project := p.Project(); project.Title() != "" || project.HasRepo() {
		out.Project = &ProjectDTO{Title: project.Title(), RepoURL: project.RepoURL().String()}
	}
	return out
}

// ToDetail converts a post to its full representation.
func ToDetail(p *entity.Post) DetailDTO {
	out := DetailDTO{SummaryDTO: ToSummary(p), Body: p.Body()}
	if prev, ok := p.Related().Prev(); ok {
		out.Related.Prev = prev.String()
	}
	if next, ok := p.Related().Next(); ok {
		out.Related.Next = next.String()
	}
	return out
}

// ToSummaries converts posts in order. The result is never nil.
func ToSummaries(posts []*entity.Post) []SummaryDTO {
	out := make([]SummaryDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToSummary(p))
	}
	return out
}

// ToSlugs converts slugs to strings. The result is never nil.
func ToSlugs(slugs []entity.Slug) []string {
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		out = append(out, s.String())
	}
	return out
}
