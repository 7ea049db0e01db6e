package docsearch_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/stretchr/testify/assert"
)

func TestPageExtract_Content(t *testing.T) {
	t.Parallel()

	t.Run("returns text on success", func(t *testing.T) {
		t.Parallel()

		p := docsearch.PageExtract{URL: "https://example.com", Text: "hello"}

		assert.Equal(t, "hello", p.Content())
	})

	t.Run("returns failure line on error", func(t *testing.T) {
		t.Parallel()

		p := docsearch.PageExtract{URL: "https://example.com", Err: errors.New("HTTP 503 for https://example.com")}

		assert.Equal(t, "FAILED: HTTP 503 for https://example.com", p.Content())
	})

	t.Run("failure line carries the message of an application error", func(t *testing.T) {
		t.Parallel()

		p := docsearch.PageExtract{
			URL: "https://example.com",
			Err: docsearch.Errorf(docsearch.EINVALID, "invalid URL %q", "https://example.com"),
		}

		assert.Equal(t, `FAILED: invalid URL "https://example.com"`, p.Content())
	})
}

func TestSearchResult_HasUsableLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		link string
		want bool
	}{
		{"https link", "https://docs.astral.sh/uv/guides/", true},
		{"http link", "http://example.com/1", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"relative", "/docs/intro", false},
		{"non-http scheme", "javascript:alert(1)", false},
		{"missing host", "https://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docsearch.SearchResult{Link: tt.link}.HasUsableLink())
		})
	}
}

func TestNoResultsMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no results found for query: 'chromadb' in langchain docs", docsearch.NoResultsMessage("chromadb", "langchain"))
}
