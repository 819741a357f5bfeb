package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/infra/content"
	"portfolio-blog/internal/repository"
)

// writePosts creates n documents named post-00..post-(n-1). Even-numbered
// posts are tagged "test"; post-i is updated on day i+1 of January 2024.
func writePosts(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		tags := "[other]"
		if i%2 == 0 {
			tags = "[test, other]"
		}
		doc := fmt.Sprintf("---\ntitle: Post %d\ntags: %s\nupdatedAt: 2024-01-%02dT00:00:00Z\n---\nBody %d\n", i, tags, i+1, i)
		writeDoc(t, dir, fmt.Sprintf("post-%02d.md", i), doc)
	}
}

func writeDoc(t *testing.T, dir, name, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644))
}

func newRepo(dir string) repository.PostRepository {
	return NewPostRepo(content.NewReader(dir, content.NewParser()), Options{ReadConcurrency: 3})
}

func titles(posts []*entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Title())
	}
	return out
}

func TestPostRepo_FetchRecentPosts(t *testing.T) {
	dir := t.TempDir()
	writePosts(t, dir, 10)
	repo := newRepo(dir)
	ctx := context.Background()

	t.Run("sorted most recent first and truncated", func(t *testing.T) {
		posts, err := repo.FetchRecentPosts(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"Post 9", "Post 8", "Post 7"}, titles(posts))
	})

	t.Run("limit above count returns all", func(t *testing.T) {
		posts, err := repo.FetchRecentPosts(ctx, 50)
		require.NoError(t, err)
		assert.Len(t, posts, 10)
		for i := 1; i < len(posts); i++ {
			assert.False(t, posts[i].UpdatedAt().After(posts[i-1].UpdatedAt()))
		}
	})

	t.Run("zero limit", func(t *testing.T) {
		posts, err := repo.FetchRecentPosts(ctx, 0)
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := repo.FetchRecentPosts(ctx, -1)
		assert.ErrorIs(t, err, repository.ErrInvalidLimit)
	})
}

func TestPostRepo_FetchRecentPosts_TiesKeepFileOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		writeDoc(t, dir, name+".md", "---\ntitle: "+name+"\nupdatedAt: 2024-01-01\n---\n")
	}

	posts, err := newRepo(dir).FetchRecentPosts(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, titles(posts))
}

func TestPostRepo_FetchPostsByTag(t *testing.T) {
	dir := t.TempDir()
	writePosts(t, dir, 10)
	repo := newRepo(dir)

	posts, err := repo.FetchPostsByTag(context.Background(), "test")
	require.NoError(t, err)
	assert.Equal(t, []string{"Post 8", "Post 6", "Post 4", "Post 2", "Post 0"}, titles(posts))

	posts, err = repo.FetchPostsByTag(context.Background(), "Test")
	require.NoError(t, err)
	assert.Len(t, posts, 5, "tags compare by slug form")

	posts, err = repo.FetchPostsByTag(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostRepo_GetPostBySlug(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "post-test.md", "---\ntitle: Post Test\nproject: Blog\nrepoUrl: github.com/rcmonteiro/blog\n---\n# Hi\n")
	repo := newRepo(dir)
	ctx := context.Background()

	post, err := repo.GetPostBySlug(ctx, "post-test")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Post Test", post.Title())
	assert.Equal(t, "post-test", post.Slug().String())
	assert.Equal(t, PostID(post.Slug()), post.ID())

	again, err := repo.GetPostBySlug(ctx, "post-test")
	require.NoError(t, err)
	assert.Equal(t, post.ID(), again.ID(), "identity is stable across queries")

	missing, err := repo.GetPostBySlug(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepo_FetchPostSlugs(t *testing.T) {
	dir := t.TempDir()
	writePosts(t, dir, 4)
	writeDoc(t, dir, "broken.md", "no metadata")

	slugs, err := newRepo(dir).FetchPostSlugs(context.Background())
	require.NoError(t, err)

	got := make([]string, 0, len(slugs))
	for _, s := range slugs {
		got = append(got, s.String())
	}
	want := []string{"broken", "post-00", "post-01", "post-02", "post-03"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("slugs mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRepo_SlugsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writePosts(t, dir, 6)
	repo := newRepo(dir)
	ctx := context.Background()

	slugs, err := repo.FetchPostSlugs(ctx)
	require.NoError(t, err)
	for _, slug := range slugs {
		post, err := repo.GetPostBySlug(ctx, slug.String())
		require.NoError(t, err)
		require.NotNil(t, post, slug.String())
		assert.True(t, post.Slug().Equals(slug))
	}
}

func TestPostRepo_BatchFailure(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "missing title", doc: "---\ntags: [test]\n---\nbody\n", wantErr: content.ErrMissingMetadata},
		{name: "invalid repo URL", doc: "---\ntitle: Bad\nrepoUrl: not a url\n---\n", wantErr: entity.ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writePosts(t, dir, 5)
			writeDoc(t, dir, "broken.md", tt.doc)
			repo := newRepo(dir)

			_, err := repo.FetchRecentPosts(context.Background(), 10)
			assert.ErrorIs(t, err, repository.ErrPostLoadFailure)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = repo.FetchRecentPosts(context.Background(), 0)
			assert.ErrorIs(t, err, repository.ErrPostLoadFailure, "zero limit still loads every document")

			var loadErr *repository.PostLoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, "broken", loadErr.Slug)

			_, err = repo.FetchPostsByTag(context.Background(), "test")
			assert.ErrorIs(t, err, repository.ErrPostLoadFailure)

			_, err = repo.GetPostBySlug(context.Background(), "broken")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// vanishingSource lists a document that it cannot load.
type vanishingSource struct {
	mu    sync.Mutex
	loads int
}

func (s *vanishingSource) ListDocuments(context.Context) ([]entity.Slug, error) {
	return []entity.Slug{entity.NewSlugFromText("gone")}, nil
}

func (s *vanishingSource) LoadDocument(context.Context, string) (*content.RawPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	return nil, nil
}

func TestPostRepo_DocumentVanished(t *testing.T) {
	src := &vanishingSource{}
	repo := NewPostRepo(src, Options{})

	_, err := repo.FetchRecentPosts(context.Background(), 10)

	assert.ErrorIs(t, err, repository.ErrPostLoadFailure)
	assert.ErrorIs(t, err, repository.ErrDocumentVanished)
	assert.Equal(t, 1, src.loads)
}

func TestPostRepo_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writePosts(t, dir, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRepo(dir).FetchRecentPosts(ctx, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{content.ErrMissingMetadata, "missing_metadata"},
		{fmt.Errorf("parse x.md: %w", content.ErrMalformedMetadata), "malformed_metadata"},
		{content.ErrInvalidDate, "invalid_date"},
		{entity.ErrInvalidURL, "invalid_url"},
		{repository.ErrDocumentVanished, "vanished"},
		{os.ErrPermission, "io"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, failureReason(tt.err))
		})
	}
}
