// Package file implements the post repository over a content directory.
// Every query re-reads the directory, so the result always reflects the
// files on disk at call time.
package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/infra/content"
	"portfolio-blog/internal/observability/metrics"
	"portfolio-blog/internal/observability/tracing"
	"portfolio-blog/internal/repository"
)

// DefaultReadConcurrency bounds parallel document loads when Options leaves it unset.
const DefaultReadConcurrency = 8

// DocumentSource lists and loads raw documents. content.Reader implements it.
type DocumentSource interface {
	ListDocuments(ctx context.Context) ([]entity.Slug, error)
	LoadDocument(ctx context.Context, slug string) (*content.RawPost, error)
}

// Options tunes a PostRepo.
type Options struct {
	// ReadConcurrency is the maximum number of documents loaded at once.
	ReadConcurrency int
	Logger          *slog.Logger
}

type PostRepo struct {
	src         DocumentSource
	concurrency int
	logger      *slog.Logger
}

func NewPostRepo(src DocumentSource, opts Options) repository.PostRepository {
	if opts.ReadConcurrency <= 0 {
		opts.ReadConcurrency = DefaultReadConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &PostRepo{
		src:         src,
		concurrency: opts.ReadConcurrency,
		logger:      opts.Logger,
	}
}

func (repo *PostRepo) GetPostBySlug(ctx context.Context, slug string) (post *entity.Post, err error) {
	ctx, done := repo.observe(ctx, "get_post_by_slug", attribute.String("post.slug", slug))
	defer func() { done(err) }()

	raw, err := repo.src.LoadDocument(ctx, slug)
	if err != nil {
		return nil, repo.loadFailed(slug, err)
	}
	if raw == nil {
		return nil, nil
	}
	post, err = ToDomain(raw)
	if err != nil {
		return nil, repo.loadFailed(slug, err)
	}
	metrics.RecordDocumentsLoaded(1)
	return post, nil
}

func (repo *PostRepo) FetchRecentPosts(ctx context.Context, limit int) (posts []*entity.Post, err error) {
	ctx, done := repo.observe(ctx, "fetch_recent_posts", attribute.Int("posts.limit", limit))
	defer func() { done(err) }()

	if limit < 0 {
		return nil, fmt.Errorf("FetchRecentPosts: %w: %d", repository.ErrInvalidLimit, limit)
	}
	posts, err = repo.loadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchRecentPosts: %w", err)
	}
	entity.SortByRecency(posts)
	posts = posts[:min(limit, len(posts))]
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("posts.count", len(posts)))
	return posts, nil
}

func (repo *PostRepo) FetchPostsByTag(ctx context.Context, tag string) (posts []*entity.Post, err error) {
	ctx, done := repo.observe(ctx, "fetch_posts_by_tag", attribute.String("posts.tag", tag))
	defer func() { done(err) }()

	all, err := repo.loadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchPostsByTag: %w", err)
	}
	posts = entity.FilterByTag(all, tag)
	entity.SortByRecency(posts)
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("posts.count", len(posts)))
	return posts, nil
}

func (repo *PostRepo) FetchPostSlugs(ctx context.Context) (slugs []entity.Slug, err error) {
	ctx, done := repo.observe(ctx, "fetch_post_slugs")
	defer func() { done(err) }()

	slugs, err = repo.src.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("FetchPostSlugs: %w", err)
	}
	return slugs, nil
}

// loadAll loads and maps every listed document. Loads run concurrently and
// fill index-addressed slots so the listing order survives. The first
// failure cancels outstanding loads and fails the batch.
func (repo *PostRepo) loadAll(ctx context.Context) ([]*entity.Post, error) {
	slugs, err := repo.src.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(slugs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(repo.concurrency)
	for i, slug := range slugs {
		g.Go(func() error {
			raw, err := repo.src.LoadDocument(gctx, slug.String())
			if err != nil {
				return repo.loadFailed(slug.String(), err)
			}
			if raw == nil {
				return repo.loadFailed(slug.String(), repository.ErrDocumentVanished)
			}
			post, err := ToDomain(raw)
			if err != nil {
				return repo.loadFailed(slug.String(), err)
			}
			posts[i] = post
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics.RecordDocumentsLoaded(len(posts))
	repo.logger.DebugContext(ctx, "posts loaded", slog.Int("count", len(posts)))
	return posts, nil
}

// loadFailed records a failed document and wraps err in a PostLoadError.
// Loads cut short by cancellation are not counted as failures.
func (repo *PostRepo) loadFailed(slug string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &repository.PostLoadError{Slug: slug, Err: err}
	}
	reason := failureReason(err)
	metrics.RecordDocumentLoadFailure(reason)
	repo.logger.Warn("document load failed",
		slog.String("slug", slug),
		slog.String("reason", reason),
		slog.Any("error", err))
	return &repository.PostLoadError{Slug: slug, Err: err}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, content.ErrMissingMetadata):
		return "missing_metadata"
	case errors.Is(err, content.ErrMalformedMetadata):
		return "malformed_metadata"
	case errors.Is(err, content.ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, entity.ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, entity.ErrValidationFailed):
		return "invalid_post"
	case errors.Is(err, repository.ErrDocumentVanished):
		return "vanished"
	default:
		return "io"
	}
}

// observe opens the span of a repository operation. The returned function
// ends it and records the operation duration.
func (repo *PostRepo) observe(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := tracing.GetTracer().Start(ctx, "post_repo."+op, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		metrics.RecordRepositoryQuery(op, time.Since(start))
	}
}
