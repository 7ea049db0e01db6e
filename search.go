package docsearch

import (
	"context"
	"net/url"
	"strings"
)

// SearchResult is a single candidate page returned by a search service.
type SearchResult struct {
	Link     string `json:"link"`
	Title    string `json:"title"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// HasUsableLink reports whether the result carries an absolute http(s) URL.
func (r SearchResult) HasUsableLink() bool {
	link := strings.TrimSpace(r.Link)
	if link == "" {
		return false
	}
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Searcher issues web searches.
type Searcher interface {
	// Search runs a single search for an already scoped query and returns
	// results in the order the service ranked them.
	// Returns a *SearchError if the service cannot be reached or fails.
	// A successful search with no matches returns an empty slice.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}
