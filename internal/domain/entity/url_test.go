package entity

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://github.com/rcmonteiro/blog", wantErr: false},
		{name: "valid http URL", url: "http://example.com", wantErr: false},
		{name: "no scheme", url: "github.com/rcmonteiro", wantErr: false},
		{name: "bare domain", url: "example.dev", wantErr: false},
		{name: "with port", url: "https://example.com:8080/path", wantErr: false},
		{name: "subdomains", url: "https://api.v2.example.co.uk/x?y=1", wantErr: false},
		{name: "empty", url: "", wantErr: true},
		{name: "no TLD", url: "https://localhost", wantErr: true},
		{name: "one letter TLD", url: "https://example.c", wantErr: true},
		{name: "ftp scheme", url: "ftp://example.com", wantErr: true},
		{name: "whitespace in path", url: "https://example.com/a b", wantErr: true},
		{name: "port too short", url: "https://example.com:8/x", wantErr: true},
		{name: "plain words", url: "not a url", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidURL)
				assert.True(t, u.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.url, u.String())
		})
	}
}

func TestNewURL_TooLong(t *testing.T) {
	raw := "https://example.com/" + strings.Repeat("a", maxURLLength)

	_, err := NewURL(raw)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "url", validationErr.Field)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "title", Message: "title is required"}

	assert.Equal(t, "validation error on field 'title': title is required", err.Error())
	assert.ErrorIs(t, err, ErrValidationFailed)
}
