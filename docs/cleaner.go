// Package docs implements the documentation retrieval pipeline: library
// resolution, scoped search, concurrent fetch-and-clean of the top results
// and assembly of a citation-tagged bundle.
package docs

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/docsearch"
)

var _ docsearch.PageCleaner = (*Cleaner)(nil)

// Cleaner fetches a page and reduces it to readable text.
//
// Extractors are tried in order until one produces text. When Converter is
// set, the winning extractor's HTML is rendered as Markdown instead of
// using its plain text.
type Cleaner struct {
	Fetcher     docsearch.Fetcher
	Extractors  []docsearch.Extractor
	Converter   docsearch.Converter
	RateLimiter docsearch.DomainLimiter
}

// FetchAndClean returns the readable text of the page at rawURL.
// A page with nothing to extract yields docsearch.NoContentExtracted.
func (c *Cleaner) FetchAndClean(ctx context.Context, rawURL string) (string, error) {
	if c.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", docsearch.Errorf(docsearch.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	html, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	result := c.extract(html)
	if result == nil {
		return docsearch.NoContentExtracted, nil
	}

	if c.Converter != nil && result.ContentHTML != "" {
		if md, err := c.Converter.Convert(result.ContentHTML, rawURL); err == nil && md != "" {
			return md, nil
		}
	}

	return result.Text, nil
}

// Clean is the fail-soft form of FetchAndClean: failures are recorded on
// the returned PageExtract instead of being returned.
func (c *Cleaner) Clean(ctx context.Context, rawURL string) docsearch.PageExtract {
	text, err := c.FetchAndClean(ctx, rawURL)
	return docsearch.PageExtract{URL: rawURL, Text: text, Err: err}
}

// extract runs the extractor chain. Extractor errors count as "nothing
// found" so the next extractor gets a chance.
func (c *Cleaner) extract(html string) *docsearch.ExtractResult {
	if strings.TrimSpace(html) == "" {
		return nil
	}
	for _, e := range c.Extractors {
		result, err := e.Extract(html)
		if err != nil || result == nil {
			continue
		}
		if strings.TrimSpace(result.Text) != "" {
			return result
		}
	}
	return nil
}
