// Package site exports the blog as static JSON payloads and rebuilds them when
// the content directory changes.
package site

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/handler/http/post"
	"portfolio-blog/internal/observability/metrics"
	"portfolio-blog/internal/observability/tracing"
	"portfolio-blog/internal/repository"
	postUC "portfolio-blog/internal/usecase/post"
	"portfolio-blog/internal/utils/paths"
	"portfolio-blog/internal/utils/text"
)

// Output layout, relative to the output directory.
const (
	IndexFile = "index.json"
	SlugsFile = "slugs.json"
	PostDir   = "post"
	TagDir    = "tag"
)

// DefaultWriteConcurrency bounds parallel per-post exports.
const DefaultWriteConcurrency = 4

// ErrOutputOverlapsContent is returned when the output directory is, contains,
// or sits inside the content directory.
var ErrOutputOverlapsContent = errors.New("output directory overlaps content directory")

// Index is the payload of index.json.
type Index struct {
	SiteURL string            `json:"siteUrl,omitempty"`
	Posts   []post.SummaryDTO `json:"posts"`
}

// Result summarizes a finished build.
type Result struct {
	Posts    int
	Tags     int
	Duration time.Duration
}

// Options configures a Builder.
type Options struct {
	OutputDir string
	// ContentDir, when set, is guarded against being removed or nested by
	// the export.
	ContentDir  string
	RecentLimit int
	SiteURL     string
	Logger      *slog.Logger
}

// Builder writes the static export through the post use cases.
type Builder struct {
	Options

	recent *postUC.FetchRecentPosts
	byTag  *postUC.FetchPostsByTag
	get    *postUC.GetPostBySlug
	slugs  *postUC.ListPostSlugs
}

func NewBuilder(repo repository.PostRepository, opts Options) *Builder {
	return &Builder{
		Options: opts,
		recent:  postUC.NewFetchRecentPosts(repo),
		byTag:   postUC.NewFetchPostsByTag(repo),
		get:     postUC.NewGetPostBySlug(repo),
		slugs:   postUC.NewListPostSlugs(repo),
	}
}

// CheckOutputDir fails with ErrOutputOverlapsContent when exporting to
// outputDir would delete or write into contentDir.
func CheckOutputDir(contentDir, outputDir string) error {
	if contentDir == "" || outputDir == "" {
		return nil
	}
	overlap, err := paths.Overlap(contentDir, outputDir)
	if err != nil {
		return err
	}
	if overlap {
		return fmt.Errorf("%w: output %q, content %q", ErrOutputOverlapsContent, outputDir, contentDir)
	}
	return nil
}

// Build replaces OutputDir with a fresh export. Payloads are assembled in a
// sibling temporary directory that is swapped in only when every write
// succeeded, so a failed build leaves the previous export untouched.
func (b *Builder) Build(ctx context.Context) (res *Result, err error) {
	start := time.Now()
	ctx, span := tracing.GetTracer().Start(ctx, "site.build",
		trace.WithAttributes(attribute.String("site.output_dir", b.OutputDir)))
	defer func() {
		dur := time.Since(start)
		metrics.RecordExport(err == nil, dur)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			res.Duration = dur
			span.SetAttributes(attribute.Int("site.posts", res.Posts), attribute.Int("site.tags", res.Tags))
		}
		span.End()
	}()

	if b.OutputDir == "" {
		return nil, errors.New("Build: output directory is required")
	}
	if err := CheckOutputDir(b.ContentDir, b.OutputDir); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	parent := filepath.Dir(filepath.Clean(b.OutputDir))
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, ".build-*")
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(tmp)
		}
	}()

	res, err = b.export(ctx, tmp)
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(b.OutputDir); err != nil {
		return nil, fmt.Errorf("Build: clean output: %w", err)
	}
	if err := os.Rename(tmp, b.OutputDir); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	b.logger().Info("site exported",
		slog.String("output_dir", b.OutputDir),
		slog.Int("posts", res.Posts),
		slog.Int("tags", res.Tags),
		slog.Duration("duration", time.Since(start)))
	return res, nil
}

func (b *Builder) export(ctx context.Context, dir string) (*Result, error) {
	listed, err := b.slugs.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("Build: list slugs: %w", err)
	}
	slugs := listed.Slugs
	if err := writeJSON(filepath.Join(dir, SlugsFile), post.SlugsResponse{Slugs: post.ToSlugs(slugs)}); err != nil {
		return nil, err
	}

	recent, err := b.recent.Execute(ctx, postUC.FetchRecentPostsInput{Limit: b.RecentLimit})
	if err != nil {
		return nil, fmt.Errorf("Build: recent posts: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, IndexFile), Index{SiteURL: b.SiteURL, Posts: post.ToSummaries(recent.Posts)}); err != nil {
		return nil, err
	}

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultWriteConcurrency)
	for _, slug := range slugs {
		g.Go(func() error {
			found, err := b.get.Execute(gctx, postUC.GetPostBySlugInput{Slug: slug.String()})
			if err != nil {
				return fmt.Errorf("Build: post %q: %w", slug, err)
			}
			if found.Post == nil {
				return fmt.Errorf("Build: post %q: %w", slug, repository.ErrDocumentVanished)
			}
			written.Add(1)
			return writeJSON(filepath.Join(dir, PostDir, slug.String()+".json"), post.ToDetail(found.Post))
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all, err := b.recent.Execute(ctx, postUC.FetchRecentPostsInput{Limit: len(slugs)})
	if err != nil {
		return nil, fmt.Errorf("Build: all posts: %w", err)
	}
	tags := distinctTags(all.Posts)
	for _, tag := range tags {
		tagged, err := b.byTag.Execute(ctx, postUC.FetchPostsByTagInput{Tag: tag.String()})
		if err != nil {
			return nil, fmt.Errorf("Build: tag %q: %w", tag, err)
		}
		payload := post.TagResponse{
			Tag:   text.SlugToTitle(tag.String()),
			Slug:  tag.String(),
			Posts: post.ToSummaries(tagged.Posts),
		}
		if err := writeJSON(filepath.Join(dir, TagDir, tag.String()+".json"), payload); err != nil {
			return nil, err
		}
	}

	return &Result{Posts: int(written.Load()), Tags: len(tags)}, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// distinctTags returns the canonical form of every tag in posts, sorted.
func distinctTags(posts []*entity.Post) []entity.Slug {
	seen := make(map[entity.Slug]struct{})
	var out []entity.Slug
	for _, p := range posts {
		for _, tag := range p.Tags() {
			s := entity.NewSlugFromText(tag)
			if s.IsZero() {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b entity.Slug) int {
		return cmp.Compare(a.String(), b.String())
	})
	return out
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
