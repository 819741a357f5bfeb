package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSlugFromText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"diacritics removed", "Café com Pão", "cafe-com-pao"},
		{"punctuation collapsed", "Go: Errors, Wrapping & You!", "go-errors-wrapping-you"},
		{"leading and trailing separators trimmed", "  --Hello--  ", "hello"},
		{"dash runs collapsed", "a - - b", "a-b"},
		{"underscore is a word character", "snake_case title", "snake_case-title"},
		{"already a slug", "post-test", "post-test"},
		{"digits kept", "Top 10 Tips for 2024", "top-10-tips-for-2024"},
		{"empty input", "", ""},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSlugFromText(tt.text).String())
		})
	}
}

func TestNewSlugFromText_Idempotent(t *testing.T) {
	first := NewSlugFromText("Construindo uma API com RabbitMQ")
	second := NewSlugFromText(first.String())
	assert.Equal(t, first, second)
}

func TestNewSlugFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected string
	}{
		{"markdown file", "my-first-post.md", "my-first-post"},
		{"with directory", "_posts/my-first-post.md", "my-first-post"},
		{"only last extension stripped", "release.v1.md", "release.v1"},
		{"no extension", "README", "README"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewSlugFromFilename(tt.filename).String())
		})
	}
}

func TestSlug_Equality(t *testing.T) {
	a := NewSlugFromText("Post Test")
	b := NewSlugFromFilename("post-test.md")

	assert.True(t, a.Equals(b))
	assert.Equal(t, a, b)
	assert.False(t, a.Equals(NewSlugFromText("other")))
	assert.True(t, Slug{}.IsZero())
}
