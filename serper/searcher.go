// Package serper implements docsearch.Searcher on top of the serper.dev
// Google search API.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/docsearch"
)

// DefaultEndpoint is the serper.dev web search endpoint.
const DefaultEndpoint = "https://google.serper.dev/search"

// DefaultTimeout bounds a single search call.
const DefaultTimeout = 30 * time.Second

// DefaultNumResults is how many results are requested per search.
const DefaultNumResults = 3

// Ensure Searcher implements docsearch.Searcher at compile time.
var _ docsearch.Searcher = (*Searcher)(nil)

// Searcher queries serper.dev. It is safe for concurrent use.
type Searcher struct {
	client     *http.Client
	apiKey     string
	endpoint   string
	numResults int
	timeout    time.Duration
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithEndpoint overrides the search endpoint.
func WithEndpoint(endpoint string) Option {
	return func(s *Searcher) {
		s.endpoint = endpoint
	}
}

// WithNumResults sets how many results to request.
// Defaults to DefaultNumResults (3) if not specified.
func WithNumResults(n int) Option {
	return func(s *Searcher) {
		s.numResults = n
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Searcher) {
		s.timeout = d
	}
}

// WithHTTPClient sets the HTTP client searches are sent with. The searcher
// uses a copy carrying its own timeout; c itself is not modified.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Searcher) {
		s.client = c
	}
}

// NewSearcher creates a Searcher authenticating with apiKey.
func NewSearcher(apiKey string, opts ...Option) *Searcher {
	s := &Searcher{
		apiKey:     apiKey,
		endpoint:   DefaultEndpoint,
		numResults: DefaultNumResults,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	client := http.Client{}
	if s.client != nil {
		client = *s.client
	}
	client.Timeout = s.timeout
	s.client = &client

	return s
}

type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type searchResponse struct {
	Organic []organicResult `json:"organic"`
}

type organicResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// Search runs one search and returns organic results in ranked order.
// No retries are attempted.
func (s *Searcher) Search(ctx context.Context, query string) ([]docsearch.SearchResult, error) {
	if query == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "search query required")
	}

	payload, err := json.Marshal(searchRequest{Q: query, Num: s.numResults})
	if err != nil {
		return nil, &docsearch.SearchError{Query: query, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &docsearch.SearchError{Query: query, Err: err}
	}
	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &docsearch.SearchError{Query: query, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &docsearch.SearchError{
			Query: query,
			Err:   fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, s.endpoint, bytes.TrimSpace(body)),
		}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &docsearch.SearchError{Query: query, Err: fmt.Errorf("decode response: %w", err)}
	}

	results := make([]docsearch.SearchResult, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		results = append(results, docsearch.SearchResult{
			Link:     r.Link,
			Title:    r.Title,
			Snippet:  r.Snippet,
			Position: r.Position,
		})
	}

	return results, nil
}
