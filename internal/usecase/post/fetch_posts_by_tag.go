package post

import (
	"context"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
)

type FetchPostsByTagInput struct {
	Tag string
}

type FetchPostsByTagOutput struct {
	Posts []*entity.Post
}

// FetchPostsByTag returns every post carrying a tag, most recent first.
type FetchPostsByTag struct {
	Repo repository.PostRepository
}

func NewFetchPostsByTag(repo repository.PostRepository) *FetchPostsByTag {
	return &FetchPostsByTag{Repo: repo}
}

func (uc *FetchPostsByTag) Execute(ctx context.Context, in FetchPostsByTagInput) (*FetchPostsByTagOutput, error) {
	posts, err := uc.Repo.FetchPostsByTag(ctx, in.Tag)
	if err != nil {
		return nil, err
	}
	return &FetchPostsByTagOutput{Posts: posts}, nil
}
