package file

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/infra/content"
)

// postNamespace scopes the name-based UUIDs of posts.
var postNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://portfolio-blog/post"))

// PostID returns the deterministic identity of the post stored under slug.
func PostID(slug entity.Slug) uuid.UUID {
	return uuid.NewSHA1(postNamespace, []byte(slug.String()))
}

// ToDomain maps a raw document to a Post. Absent optional metadata becomes
// the zero value of the matching attribute. An invalid repoUrl fails with an
// error matching entity.ErrInvalidURL.
func ToDomain(raw *content.RawPost) (*entity.Post, error) {
	if raw == nil {
		return nil, errors.New("ToDomain: nil document")
	}
	md := raw.Metadata

	project, err := entity.NewProject(deref(md.Project), deref(md.RepoURL))
	if err != nil {
		return nil, fmt.Errorf("ToDomain: project: %w", err)
	}

	var updatedAt time.Time
	if md.UpdatedAt != nil {
		updatedAt = *md.UpdatedAt
	}

	post, err := entity.NewPost(entity.PostProps{
		Title:     md.Title,
		Slug:      raw.FileName,
		Body:      raw.Content,
		Excerpt:   deref(md.Excerpt),
		UpdatedAt: updatedAt,
		Project:   project,
		Related:   entity.NewPostRelated(deref(md.Prev), deref(md.Next)),
		Tags:      md.Tags,
	}, PostID(raw.FileName))
	if err != nil {
		return nil, fmt.Errorf("ToDomain: %w", err)
	}
	return post, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
