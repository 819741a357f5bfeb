package post

import (
	"context"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
)

type GetPostBySlugInput struct {
	Slug string
}

// GetPostBySlugOutput holds the post, nil when no post has the slug.
type GetPostBySlugOutput struct {
	Post *entity.Post
}

type GetPostBySlug struct {
	Repo repository.PostRepository
}

func NewGetPostBySlug(repo repository.PostRepository) *GetPostBySlug {
	return &GetPostBySlug{Repo: repo}
}

// Execute looks the post up. Absence is not an error.
func (uc *GetPostBySlug) Execute(ctx context.Context, in GetPostBySlugInput) (*GetPostBySlugOutput, error) {
	post, err := uc.Repo.GetPostBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	return &GetPostBySlugOutput{Post: post}, nil
}
