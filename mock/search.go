package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of docsearch.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]docsearch.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]docsearch.SearchResult, error) {
	return s.SearchFn(ctx, query)
}
