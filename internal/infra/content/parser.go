package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"portfolio-blog/internal/utils/text"
)

// ExcerptLength is the rune length of an excerpt derived from the body.
const ExcerptLength = 160

// dateLayouts are tried in order when decoding a string date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// frontMatter mirrors the recognized keys. Dates are decoded loosely because
// YAML keeps them as strings while TOML yields native datetimes.
type frontMatter struct {
	Title     string   `yaml:"title" toml:"title" json:"title"`
	Tags      []string `yaml:"tags" toml:"tags" json:"tags"`
	Date      any      `yaml:"date" toml:"date" json:"date"`
	UpdatedAt any      `yaml:"updatedAt" toml:"updatedAt" json:"updatedAt"`
	Excerpt   *string  `yaml:"excerpt" toml:"excerpt" json:"excerpt"`
	Project   *string  `yaml:"project" toml:"project" json:"project"`
	RepoURL   *string  `yaml:"repoUrl" toml:"repoUrl" json:"repoUrl"`
	Next      *string  `yaml:"next" toml:"next" json:"next"`
	Prev      *string  `yaml:"prev" toml:"prev" json:"prev"`
}

// Parser splits front matter from the body and renders the body to HTML.
// A Parser is safe for concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// NewParser returns a Parser rendering GitHub Flavored Markdown with
// automatic heading IDs.
func NewParser() *Parser {
	return &Parser{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Parse decodes the front matter of content and renders its body.
// It returns ErrMissingMetadata when there is no front matter or no title,
// ErrMalformedMetadata when the front matter cannot be decoded and
// ErrInvalidDate when a date is present but unrecognized.
func (p *Parser) Parse(content []byte) (*Parsed, error) {
	var fm frontMatter
	rest, err := frontmatter.MustParse(bytes.NewReader(content), &fm)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, ErrMissingMetadata
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedMetadata, err)
	}
	if strings.TrimSpace(fm.Title) == "" {
		return nil, ErrMissingMetadata
	}

	updatedAt, err := pickDate(fm.UpdatedAt, fm.Date)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := p.md.Convert(rest, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	body := buf.String()

	excerpt := fm.Excerpt
	if excerpt == nil {
		derived, err := deriveExcerpt(body)
		if err != nil {
			return nil, err
		}
		excerpt = &derived
	}

	return &Parsed{
		Metadata: Metadata{
			Title:     fm.Title,
			Tags:      fm.Tags,
			UpdatedAt: updatedAt,
			Excerpt:   excerpt,
			Project:   fm.Project,
			RepoURL:   fm.RepoURL,
			Next:      fm.Next,
			Prev:      fm.Prev,
		},
		Body: body,
	}, nil
}

// pickDate returns the first declared date among candidates, parsed.
func pickDate(candidates ...any) (*time.Time, error) {
	for _, c := range candidates {
		switch v := c.(type) {
		case nil:
			continue
		case time.Time:
			return &v, nil
		case string:
			if strings.TrimSpace(v) == "" {
				continue
			}
			t, err := parseDate(v)
			if err != nil {
				return nil, err
			}
			return &t, nil
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, v)
		}
	}
	return nil, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// deriveExcerpt extracts the text content of rendered HTML and truncates it.
func deriveExcerpt(body string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("read rendered body: %w", err)
	}
	return text.Truncate(text.CollapseSpace(doc.Text()), ExcerptLength), nil
}
