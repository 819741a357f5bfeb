package post

import (
	"context"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
)

type ListPostSlugsOutput struct {
	Slugs []entity.Slug
}

// ListPostSlugs enumerates every post identifier, used for static path generation.
type ListPostSlugs struct {
	Repo repository.PostRepository
}

func NewListPostSlugs(repo repository.PostRepository) *ListPostSlugs {
	return &ListPostSlugs{Repo: repo}
}

func (uc *ListPostSlugs) Execute(ctx context.Context) (*ListPostSlugsOutput, error) {
	slugs, err := uc.Repo.FetchPostSlugs(ctx)
	if err != nil {
		return nil, err
	}
	return &ListPostSlugsOutput{Slugs: slugs}, nil
}
