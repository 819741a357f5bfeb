package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.Written())
	assert.Same(t, wrapped, Wrap(wrapped), "wrapping twice reuses the recorder")
	assert.Equal(t, rec, wrapped.Unwrap())
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "status 200", statusCode: http.StatusOK},
		{name: "status 404", statusCode: http.StatusNotFound},
		{name: "status 500", statusCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			wrapped.WriteHeader(tt.statusCode)

			assert.Equal(t, tt.statusCode, wrapped.StatusCode())
			assert.True(t, wrapped.Written())
			assert.Equal(t, tt.statusCode, rec.Code)
		})
	}
}

func TestResponseWriter_WriteHeader_MultipleCallsIgnored(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())

	wrapped.WriteHeader(http.StatusOK)
	wrapped.WriteHeader(http.StatusNotFound)

	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n1, err := wrapped.Write([]byte("hello "))
	require.NoError(t, err)
	n2, err := wrapped.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, 11, n1+n2)
	assert.Equal(t, 11, wrapped.BytesWritten())
	assert.Equal(t, "hello world", rec.Body.String())
	assert.True(t, wrapped.Written(), "write sends an implicit 200")
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, wrapped.Written())
}

func TestResponseWriter_InMiddleware(t *testing.T) {
	var status, size int
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := Wrap(w)
			next.ServeHTTP(wrapped, r)
			status, size = wrapped.StatusCode(), wrapped.BytesWritten()
		})
	}
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/missing", nil))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 9, size)
	assert.Equal(t, "not found", rec.Body.String())
}
