// Package repository declares the storage-facing contracts of the blog.
package repository

import (
	"context"

	"portfolio-blog/internal/domain/entity"
)

// PostRepository is the read-only source of posts.
// Every call sees the content as it is at call time.
type PostRepository interface {
	// GetPostBySlug returns the post with the given slug.
	// Returns (nil, nil) if no such post exists.
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	// FetchRecentPosts returns at most limit posts ordered by UpdatedAt DESC.
	// Posts with equal timestamps keep load order. A negative limit fails with ErrInvalidLimit.
	// Every document is loaded regardless of limit, so a zero limit still
	// surfaces load failures.
	FetchRecentPosts(ctx context.Context, limit int) ([]*entity.Post, error)
	// FetchPostsByTag returns every post carrying tag, ordered by UpdatedAt DESC.
	// Tags are compared by their slug form.
	FetchPostsByTag(ctx context.Context, tag string) ([]*entity.Post, error)
	FetchPostSlugs(ctx context.Context) ([]entity.Slug, error)
}
