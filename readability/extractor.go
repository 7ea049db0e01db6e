// Package readability implements docsearch.Extractor with go-readability.
// It is used as a fallback when the primary extractor finds no text.
package readability

import (
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docsearch.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &docsearch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        strings.TrimSpace(article.TextContent),
	}, nil
}
