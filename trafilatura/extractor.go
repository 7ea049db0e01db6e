// Package trafilatura implements docsearch.Extractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/docsearch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// It excludes comment sections, keeps tables and favours recall over
// precision so that reference pages still yield text.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
			ExcludeTables:   false,
			Focus:           trafilatura.FavorRecall,
		},
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*docsearch.ExtractResult, error) {
	if rawHTML == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "parse HTML: %v", err)
	}

	// With fallback enabled trafilatura reports the <title> as content for
	// pages whose body is empty, so only pages with visible body text are
	// handed to it. This runs first since extraction rewrites the tree.
	if !hasBodyText(doc) {
		return &docsearch.ExtractResult{}, nil
	}

	result, err := trafilatura.ExtractDocument(doc, e.opts)
	if err != nil {
		// Pages without anything article-shaped are an expected outcome.
		return &docsearch.ExtractResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, docsearch.Errorf(docsearch.EINTERNAL, "render content: %v", err)
		}
	}

	return &docsearch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Text:        strings.TrimSpace(result.ContentText),
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// hasBodyText reports whether the document's <body> holds any visible text.
func hasBodyText(doc *html.Node) bool {
	body := findElement(doc, "body")
	if body == nil {
		return false
	}
	return hasText(body)
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func hasText(n *html.Node) bool {
	switch {
	case n.Type == html.TextNode:
		return strings.TrimSpace(n.Data) != ""
	case n.Type == html.ElementNode && invisible[n.Data]:
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasText(c) {
			return true
		}
	}
	return false
}

var invisible = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
}
