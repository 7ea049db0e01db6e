package mock

import (
	"context"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.DocsService = (*DocsService)(nil)

// DocsService is a mock implementation of docsearch.DocsService.
type DocsService struct {
	GetDocsFn func(ctx context.Context, query, library string) (string, error)
}

func (s *DocsService) GetDocs(ctx context.Context, query, library string) (string, error) {
	return s.GetDocsFn(ctx, query, library)
}

var _ docsearch.PageCleaner = (*PageCleaner)(nil)

// PageCleaner is a mock implementation of docsearch.PageCleaner.
type PageCleaner struct {
	FetchAndCleanFn func(ctx context.Context, url string) (string, error)
}

func (c *PageCleaner) FetchAndClean(ctx context.Context, url string) (string, error) {
	return c.FetchAndCleanFn(ctx, url)
}
