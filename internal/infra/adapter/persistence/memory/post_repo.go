// Package memory implements an in-memory post repository with the same
// ordering and filtering behavior as the file repository. It backs tests
// and fixtures.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/repository"
)

type PostRepo struct {
	mu    sync.RWMutex
	posts []*entity.Post
}

// NewPostRepo returns a repository holding posts in insertion order.
func NewPostRepo(posts ...*entity.Post) *PostRepo {
	return &PostRepo{posts: slices.Clone(posts)}
}

var _ repository.PostRepository = (*PostRepo)(nil)

// Add appends posts. A post whose slug is already stored replaces the old one in place.
func (repo *PostRepo) Add(posts ...*entity.Post) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, p := range posts {
		i := slices.IndexFunc(repo.posts, func(q *entity.Post) bool { return q.Slug().Equals(p.Slug()) })
		if i >= 0 {
			repo.posts[i] = p
			continue
		}
		repo.posts = append(repo.posts, p)
	}
}

func (repo *PostRepo) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	for _, p := range repo.posts {
		if p.Slug().String() == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (repo *PostRepo) FetchRecentPosts(ctx context.Context, limit int) ([]*entity.Post, error) {
	if limit < 0 {
		return nil, fmt.Errorf("FetchRecentPosts: %w: %d", repository.ErrInvalidLimit, limit)
	}
	posts, err := repo.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	entity.SortByRecency(posts)
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (repo *PostRepo) FetchPostsByTag(ctx context.Context, tag string) ([]*entity.Post, error) {
	all, err := repo.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	posts := entity.FilterByTag(all, tag)
	entity.SortByRecency(posts)
	return posts, nil
}

func (repo *PostRepo) FetchPostSlugs(ctx context.Context) ([]entity.Slug, error) {
	posts, err := repo.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]entity.Slug, 0, len(posts))
	for _, p := range posts {
		slugs = append(slugs, p.Slug())
	}
	return slugs, nil
}

// snapshot copies the stored slice so callers can sort it freely.
func (repo *PostRepo) snapshot(ctx context.Context) ([]*entity.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	out := make([]*entity.Post, len(repo.posts))
	copy(out, repo.posts)
	return out, nil
}
