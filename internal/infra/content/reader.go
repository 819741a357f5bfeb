package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"portfolio-blog/internal/domain/entity"
)

// DefaultExtension is used when a Reader is built without extensions.
const DefaultExtension = ".md"

// Reader lists and loads documents from a single content directory.
// Subdirectories are ignored.
type Reader struct {
	dir    string
	exts   []string
	parser *Parser
}

// NewReader builds a Reader over dir. Extensions are matched exactly, a
// missing leading dot is added; with none given, DefaultExtension is used.
func NewReader(dir string, parser *Parser, exts ...string) *Reader {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(normalized, ext) {
			normalized = append(normalized, ext)
		}
	}
	if len(normalized) == 0 {
		normalized = []string{DefaultExtension}
	}
	if parser == nil {
		parser = NewParser()
	}
	return &Reader{dir: dir, exts: normalized, parser: parser}
}

// Dir returns the content directory.
func (r *Reader) Dir() string { return r.dir }

// Ping reports whether the content directory is readable.
func (r *Reader) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(r.dir)
	if err != nil {
		return fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("content dir %q is not a directory", r.dir)
	}
	return nil
}

// ListDocuments returns the slug of every document in the directory, in
// lexical file-name order. Symlinks are followed. When one name exists under
// several extensions it is listed once; LoadDocument resolves it to the
// extension configured first.
func (r *Reader) ListDocuments(ctx context.Context) ([]entity.Slug, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	slugs := make([]entity.Slug, 0, len(entries))
	seen := make(map[entity.Slug]struct{}, len(entries))
	for _, e := range entries {
		if !r.hasExtension(e.Name()) || !r.isDocument(e) {
			continue
		}
		slug := entity.NewSlugFromFilename(e.Name())
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// isDocument reports whether e is a regular file, resolving symlinks.
func (r *Reader) isDocument(e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(r.dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}

// LoadDocument reads and parses the document named slug. It returns nil, nil
// when no such document exists, and the parser error for a malformed one.
// Anything other than a regular file (after following symlinks) is absent.
func (r *Reader) LoadDocument(ctx context.Context, slug string) (*RawPost, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validName(slug) {
		return nil, nil
	}

	for _, ext := range r.exts {
		name := slug + ext
		path := filepath.Join(r.dir, name)
		info, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		parsed, err := r.parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return &RawPost{
			FileName: entity.NewSlugFromFilename(name),
			Metadata: parsed.Metadata,
			Content:  parsed.Body,
		}, nil
	}
	return nil, nil
}

func (r *Reader) hasExtension(name string) bool {
	return slices.Contains(r.exts, filepath.Ext(name))
}

// validName rejects names that could escape the content directory.
func validName(slug string) bool {
	if slug == "" || slug == "." || strings.Contains(slug, "..") {
		return false
	}
	return !strings.ContainsAny(slug, `/\`)
}
