package docsearch

import "context"

// NoContentExtracted is the text used for a page that was fetched but
// yielded no readable content. It still counts as a source.
const NoContentExtracted = "No content extracted"

// PageExtract is the outcome of fetching and cleaning one URL.
type PageExtract struct {
	URL  string
	Text string

	// Err is set when the page could not be fetched or cleaned.
	Err error
}

// Content returns the text to include in a bundle for this page.
// Failed pages render as a failure line instead of being dropped.
func (p PageExtract) Content() string {
	if p.Err != nil {
		return "FAILED: " + ErrorMessage(p.Err)
	}
	return p.Text
}

// PageCleaner fetches a page and reduces it to readable text.
type PageCleaner interface {
	// FetchAndClean returns the readable text of the page at url,
	// or NoContentExtracted if the page had nothing to extract.
	// Transport failures are returned as errors.
	FetchAndClean(ctx context.Context, url string) (string, error)
}
