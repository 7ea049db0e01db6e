package serper_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/serper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ docsearch.Searcher = (*serper.Searcher)(nil)

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("posts query with api key and returns organic results in order", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		var gotKey, gotMethod, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotKey = r.Header.Get("X-API-KEY")
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"searchParameters": {"q": "ignored"},
				"organic": [
					{"title": "Second", "link": "http://example.com/2", "snippet": "b", "position": 1},
					{"title": "First", "link": "http://example.com/1", "snippet": "a", "position": 2},
					{"title": "No link", "snippet": "c", "position": 3}
				]
			}`))
		}))
		defer server.Close()

		s := serper.NewSearcher("secret", serper.WithEndpoint(server.URL))

		results, err := s.Search(context.Background(), "site:docs.astral.sh/uv lockfile")

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "secret", gotKey)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "site:docs.astral.sh/uv lockfile", gotBody["q"])
		assert.InDelta(t, 3, gotBody["num"], 0)

		require.Len(t, results, 3)
		assert.Equal(t, "http://example.com/2", results[0].Link)
		assert.Equal(t, "Second", results[0].Title)
		assert.Equal(t, "http://example.com/1", results[1].Link)
		assert.Empty(t, results[2].Link)
	})

	t.Run("requests configured number of results", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{"organic": []}`))
		}))
		defer server.Close()

		s := serper.NewSearcher("k", serper.WithEndpoint(server.URL), serper.WithNumResults(7))

		_, err := s.Search(context.Background(), "q")

		require.NoError(t, err)
		assert.InDelta(t, 7, gotBody["num"], 0)
	})

	t.Run("missing organic key means zero results", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"searchParameters": {"q": "x"}}`))
		}))
		defer server.Close()

		s := serper.NewSearcher("k", serper.WithEndpoint(server.URL))

		results, err := s.Search(context.Background(), "x")

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("non-2xx status returns search error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message": "Unauthorized."}`))
		}))
		defer server.Close()

		s := serper.NewSearcher("bad", serper.WithEndpoint(server.URL))

		_, err := s.Search(context.Background(), "x")

		var searchErr *docsearch.SearchError
		require.ErrorAs(t, err, &searchErr)
		assert.Equal(t, "x", searchErr.Query)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "Unauthorized.")
		assert.Equal(t, docsearch.EUNAVAILABLE, docsearch.ErrorCode(err))
	})

	t.Run("does not retry on failure", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		s := serper.NewSearcher("k", serper.WithEndpoint(server.URL))

		_, err := s.Search(context.Background(), "x")

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("invalid JSON returns search error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		s := serper.NewSearcher("k", serper.WithEndpoint(server.URL))

		_, err := s.Search(context.Background(), "x")

		var searchErr *docsearch.SearchError
		require.ErrorAs(t, err, &searchErr)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("timeout returns search error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"organic": []}`))
		}))
		defer server.Close()

		s := serper.NewSearcher("k", serper.WithEndpoint(server.URL), serper.WithTimeout(10*time.Millisecond))

		_, err := s.Search(context.Background(), "x")

		var searchErr *docsearch.SearchError
		require.ErrorAs(t, err, &searchErr)
	})

	t.Run("does not modify a shared client", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"organic": [{"link": "https://docs.astral.sh/uv/"}]}`))
		}))
		defer server.Close()

		shared := &http.Client{}
		slow := serper.NewSearcher("k", serper.WithEndpoint(server.URL), serper.WithHTTPClient(shared), serper.WithTimeout(time.Minute))
		fast := serper.NewSearcher("k", serper.WithEndpoint(server.URL), serper.WithHTTPClient(shared), serper.WithTimeout(10*time.Millisecond))

		_, err := fast.Search(context.Background(), "x")
		require.Error(t, err)

		results, err := slow.Search(context.Background(), "x")
		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Zero(t, shared.Timeout)
	})

	t.Run("unreachable host returns search error", func(t *testing.T) {
		t.Parallel()

		s := serper.NewSearcher("k",
			serper.WithEndpoint("http://non-existent-host.invalid/search"),
			serper.WithTimeout(100*time.Millisecond),
		)

		_, err := s.Search(context.Background(), "x")

		var searchErr *docsearch.SearchError
		require.ErrorAs(t, err, &searchErr)
	})

	t.Run("empty query is invalid", func(t *testing.T) {
		t.Parallel()

		s := serper.NewSearcher("k")

		_, err := s.Search(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})
}
