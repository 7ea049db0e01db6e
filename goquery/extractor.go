package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsearch.Extractor at compile time.
var _ docsearch.Extractor = (*Extractor)(nil)

// contentRoots lists, per framework, the selectors wrapping the article body.
// The first selector that matches wins.
var contentRoots = map[docsearch.Framework][]string{
	docsearch.FrameworkDocusaurus: {".theme-doc-markdown", "article"},
	docsearch.FrameworkMkDocs:     {".md-content__inner", ".md-content"},
	docsearch.FrameworkSphinx:     {"[role='main']", ".document .body", ".rst-content"},
	docsearch.FrameworkVitePress:  {".vp-doc", "#VPContent"},
	docsearch.FrameworkVuePress:   {".theme-default-content"},
	docsearch.FrameworkGitBook:    {"main"},
	docsearch.FrameworkNextra:     {"article", "main"},
}

// genericRoots are tried when the framework is unknown or its roots are absent.
var genericRoots = []string{"main", "article", "[role='main']", "#content", ".content", "body"}

// noise is removed from the content root before text is collected.
const noise = "script, style, noscript, template, svg, nav, header, footer, aside, form, " +
	"button, iframe, .headerlink, .md-source-file, .theme-doc-footer, .pagination-nav"

// blockTags end the current line when text collection enters or leaves them.
var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "dd": true, "div": true,
	"dl": true, "dt": true, "figcaption": true, "figure": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "hr": true,
	"li": true, "main": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tr": true, "ul": true, "br": true,
}

// Extractor pulls the main content out of documentation pages using the
// detected framework's markup. It never gives up on a page with a body,
// which makes it the last link of an extractor chain.
type Extractor struct {
	detector docsearch.FrameworkDetector
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithDetector replaces the framework detector used to pick the content root.
func WithDetector(d docsearch.FrameworkDetector) ExtractorOption {
	return func(e *Extractor) {
		e.detector = d
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{detector: NewDetector()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the main content of the page. A page with no visible
// text yields an empty result.
func (e *Extractor) Extract(rawHTML string) (*docsearch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); title == "" && h1 != "" {
		title = h1
	}

	root := contentRoot(doc, e.detector.Detect(rawHTML))
	if root == nil {
		return &docsearch.ExtractResult{Title: title}, nil
	}
	root.Find(noise).Remove()

	text := collectText(root)
	if text == "" {
		return &docsearch.ExtractResult{Title: title}, nil
	}

	contentHTML, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, docsearch.Errorf(docsearch.EINTERNAL, "failed to render content: %v", err)
	}

	return &docsearch.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Text:        text,
	}, nil
}

func contentRoot(doc *goquery.Document, framework docsearch.Framework) *goquery.Selection {
	selectors := slices.Concat(contentRoots[framework], genericRoots)
	for _, sel := range selectors {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return nil
}

// collectText renders a selection as plain text, one line per block
// element, with preformatted blocks kept verbatim.
func collectText(sel *goquery.Selection) string {
	var b strings.Builder
	var line strings.Builder

	flush := func() {
		if s := strings.Join(strings.Fields(line.String()), " "); s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
		line.Reset()
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			line.WriteString(n.Data)
			return
		case html.ElementNode:
			if n.Data == "pre" {
				flush()
				pre := strings.Trim(goquery.NewDocumentFromNode(n).Text(), "\n")
				if strings.TrimSpace(pre) != "" {
					b.WriteString(pre)
					b.WriteByte('\n')
				}
				return
			}
			if blockTags[n.Data] {
				flush()
				defer flush()
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	flush()

	return strings.TrimSpace(b.String())
}
