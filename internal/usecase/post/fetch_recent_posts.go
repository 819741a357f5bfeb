package post

import (
	"context"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
)

// FetchRecentPostsInput represents the input parameters for FetchRecentPosts.
type FetchRecentPostsInput struct {
	Limit int
}

type FetchRecentPostsOutput struct {
	Posts []*entity.Post
}

// FetchRecentPosts returns the most recently updated posts.
type FetchRecentPosts struct {
	Repo repository.PostRepository
}

func NewFetchRecentPosts(repo repository.PostRepository) *FetchRecentPosts {
	return &FetchRecentPosts{Repo: repo}
}

func (uc *FetchRecentPosts) Execute(ctx context.Context, in FetchRecentPostsInput) (*FetchRecentPostsOutput, error) {
	posts, err := uc.Repo.FetchRecentPosts(ctx, in.Limit)
	if err != nil {
		return nil, err
	}
	return &FetchRecentPostsOutput{Posts: posts}, nil
}
