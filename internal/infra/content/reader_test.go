package content

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-blog/internal/domain/entity"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func slugStrings(slugs []entity.Slug) []string {
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		out = append(out, s.String())
	}
	return out
}

func TestReader_ListDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b-post.md", "---\ntitle: B\n---\n")
	writeFile(t, dir, "a-post.md", "---\ntitle: A\n---\n")
	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "c-post.markdown", "---\ntitle: C\n---\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.md"), 0o755))

	t.Run("default extension", func(t *testing.T) {
		r := NewReader(dir, nil)
		slugs, err := r.ListDocuments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"a-post", "b-post"}, slugStrings(slugs))
	})

	t.Run("extra extension without dot", func(t *testing.T) {
		r := NewReader(dir, nil, ".md", "markdown")
		slugs, err := r.ListDocuments(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"a-post", "b-post", "c-post"}, slugStrings(slugs))
	})

	t.Run("missing directory", func(t *testing.T) {
		r := NewReader(filepath.Join(dir, "absent"), nil)
		_, err := r.ListDocuments(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewReader(dir, nil).ListDocuments(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestReader_LoadDocument(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "post-test.md", fullDocument)
	writeFile(t, dir, "broken.md", "no front matter here")
	r := NewReader(dir, NewParser())
	ctx := context.Background()

	t.Run("existing document", func(t *testing.T) {
		raw, err := r.LoadDocument(ctx, "post-test")
		require.NoError(t, err)
		require.NotNil(t, raw)
		assert.Equal(t, "post-test", raw.FileName.String())
		assert.Equal(t, "Post Test", raw.Metadata.Title)
		assert.Contains(t, raw.Content, "<h1")
	})

	t.Run("missing document", func(t *testing.T) {
		raw, err := r.LoadDocument(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("malformed document", func(t *testing.T) {
		raw, err := r.LoadDocument(ctx, "broken")
		assert.Nil(t, raw)
		assert.ErrorIs(t, err, ErrMissingMetadata)
	})

	for _, slug := range []string{"", "../post-test", "sub/post-test", `sub\post-test`, ".."} {
		t.Run("rejects "+slug, func(t *testing.T) {
			raw, err := r.LoadDocument(ctx, slug)
			assert.NoError(t, err)
			assert.Nil(t, raw)
		})
	}
}

func TestReader_DuplicateExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "---\ntitle: From md\n---\n")
	writeFile(t, dir, "a.markdown", "---\ntitle: From markdown\n---\n")
	writeFile(t, dir, "b.markdown", "---\ntitle: B\n---\n")
	r := NewReader(dir, NewParser(), ".md", ".markdown")
	ctx := context.Background()

	slugs, err := r.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, slugStrings(slugs))

	raw, err := r.LoadDocument(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, "From md", raw.Metadata.Title)

	t.Run("precedence follows extension order", func(t *testing.T) {
		raw, err := NewReader(dir, NewParser(), ".markdown", ".md").LoadDocument(ctx, "a")
		require.NoError(t, err)
		require.NotNil(t, raw)
		assert.Equal(t, "From markdown", raw.Metadata.Title)
	})
}

func TestReader_NonRegularEntries(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "shared.md")
	require.NoError(t, os.WriteFile(target, []byte(fullDocument), 0o644))
	if err := os.Symlink(target, filepath.Join(dir, "linked.md")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone.md"), filepath.Join(dir, "dangling.md")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.md"), 0o755))
	writeFile(t, dir, "plain.md", fullDocument)

	r := NewReader(dir, NewParser())
	ctx := context.Background()

	slugs, err := r.ListDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"linked", "plain"}, slugStrings(slugs))

	t.Run("symlink loads its target", func(t *testing.T) {
		raw, err := r.LoadDocument(ctx, "linked")
		require.NoError(t, err)
		require.NotNil(t, raw)
		assert.Equal(t, "Post Test", raw.Metadata.Title)
	})

	for _, slug := range []string{"folder", "dangling"} {
		t.Run(slug+" is absent", func(t *testing.T) {
			raw, err := r.LoadDocument(ctx, slug)
			assert.NoError(t, err)
			assert.Nil(t, raw)
		})
	}
}

func TestReader_Ping(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, NewReader(dir, nil).Ping(context.Background()))

	file := filepath.Join(dir, "file.md")
	writeFile(t, dir, "file.md", "x")
	assert.Error(t, NewReader(file, nil).Ping(context.Background()))
	assert.Error(t, NewReader(filepath.Join(dir, "missing"), nil).Ping(context.Background()))
}
