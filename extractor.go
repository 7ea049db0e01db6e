package docsearch

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, comments) has been removed.
	ContentHTML string

	// Text is the main content as readable plain text.
	// Empty when the extractor found nothing article-shaped.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Finding no content is not an error: the result has an empty Text.
	Extract(html string) (*ExtractResult, error)
}
