package docs

import (
	"context"
	"strings"

	"github.com/fwojciec/docsearch"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxSources is how many search results are turned into sources.
const DefaultMaxSources = 2

var _ docsearch.DocsService = (*Service)(nil)

// Service implements docsearch.DocsService.
type Service struct {
	Registry *docsearch.Registry
	Searcher docsearch.Searcher
	Pages    docsearch.PageCleaner

	// MaxSources caps how many leading search results are considered.
	// Zero means DefaultMaxSources.
	MaxSources int

	// MaxContentLength caps each source's text in characters.
	// Zero means docsearch.MaxContentLength; negative disables the cap.
	MaxContentLength int

	// Concurrency bounds parallel page fetches. Zero fetches all
	// candidates at once.
	Concurrency int
}

// GetDocs searches library's documentation for query and returns the top
// pages as a citation-tagged bundle.
func (s *Service) GetDocs(ctx context.Context, query, library string) (string, error) {
	domain, err := s.Registry.Resolve(library)
	if err != nil {
		return "", err
	}

	results, err := s.Searcher.Search(ctx, docsearch.ScopedQuery(domain, query))
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return docsearch.NoResultsMessage(query, library), nil
	}

	urls := candidateURLs(results, s.maxSources())
	if len(urls) == 0 {
		return docsearch.NoExtractableContent, nil
	}

	pages := s.fetchAll(ctx, urls)
	if err := ctx.Err(); err != nil {
		return "", err
	}

	limit := s.MaxContentLength
	if limit == 0 {
		limit = docsearch.MaxContentLength
	}

	sources := make([]docsearch.Source, 0, len(pages))
	for _, p := range pages {
		sources = append(sources, docsearch.Source{
			URL:  p.URL,
			Text: docsearch.TruncateContent(p.Content(), limit),
		})
	}
	if len(sources) == 0 {
		return docsearch.NoExtractableContent, nil
	}

	return docsearch.FormatSources(sources), nil
}

func (s *Service) maxSources() int {
	if s.MaxSources <= 0 {
		return DefaultMaxSources
	}
	return s.MaxSources
}

// candidateURLs takes the first k results and keeps those with a usable
// link. Results past k are never promoted to fill a skipped slot.
func candidateURLs(results []docsearch.SearchResult, k int) []string {
	urls := make([]string, 0, k)
	for _, r := range results[:min(k, len(results))] {
		if r.HasUsableLink() {
			urls = append(urls, strings.TrimSpace(r.Link))
		}
	}
	return urls
}

// fetchAll cleans every URL concurrently. Results are stored by index so
// output order matches candidate order regardless of completion order.
func (s *Service) fetchAll(ctx context.Context, urls []string) []docsearch.PageExtract {
	pages := make([]docsearch.PageExtract, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	if s.Concurrency > 0 {
		g.SetLimit(s.Concurrency)
	}

	for i, u := range urls {
		g.Go(func() error {
			text, err := s.Pages.FetchAndClean(gctx, u)
			pages[i] = docsearch.PageExtract{URL: u, Text: text, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return pages
}
