// Package goquery implements documentation framework detection and a
// selector-based content extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsearch"
)

// Ensure Detector implements docsearch.FrameworkDetector at compile time.
var _ docsearch.FrameworkDetector = (*Detector)(nil)

// frameworkMarker lists selectors unique to a framework's generated markup.
type frameworkMarker struct {
	framework docsearch.Framework
	selectors []string
}

// markers are checked in order; VitePress comes before VuePress because it
// reuses some VuePress class names.
var markers = []frameworkMarker{
	{docsearch.FrameworkDocusaurus, []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", ".theme-doc-markdown"}},
	{docsearch.FrameworkMkDocs, []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"}},
	{docsearch.FrameworkSphinx, []string{".toctree-wrapper", ".wy-nav-side", ".sphinxsidebar"}},
	{docsearch.FrameworkVitePress, []string{"#VPContent", ".VPDoc"}},
	{docsearch.FrameworkVuePress, []string{".theme-default-content", ".vuepress-navbar"}},
	{docsearch.FrameworkGitBook, []string{"[data-testid='space.sidebar']", "[data-testid='page.desktopTableOfContents']"}},
	{docsearch.FrameworkNextra, []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"}},
}

// generators maps substrings of <meta name="generator"> to frameworks.
var generators = []struct {
	substr    string
	framework docsearch.Framework
}{
	{"sphinx", docsearch.FrameworkSphinx},
	{"gitbook", docsearch.FrameworkGitBook},
	{"docusaurus", docsearch.FrameworkDocusaurus},
	{"mkdocs", docsearch.FrameworkMkDocs},
	{"vitepress", docsearch.FrameworkVitePress},
	{"vuepress", docsearch.FrameworkVuePress},
	{"nextra", docsearch.FrameworkNextra},
}

// Detector identifies documentation frameworks from HTML content.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
func (d *Detector) Detect(html string) docsearch.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return docsearch.FrameworkUnknown
	}
	return detectDocument(doc)
}

// detectDocument checks the generator meta tag first, then structural markers.
func detectDocument(doc *goquery.Document) docsearch.Framework {
	if generator, ok := doc.Find("meta[name='generator']").Last().Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, g := range generators {
			if strings.Contains(generator, g.substr) {
				return g.framework
			}
		}
	}

	for _, m := range markers {
		for _, sel := range m.selectors {
			if doc.Find(sel).Length() > 0 {
				return m.framework
			}
		}
	}

	return docsearch.FrameworkUnknown
}
