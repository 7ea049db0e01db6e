package docsearch

import (
	"context"
	"fmt"
)

// NoExtractableContent is returned by GetDocs when the search succeeded but
// none of the candidate results could be turned into a source.
const NoExtractableContent = "found search results but failed to extract content from pages"

// NoResultsMessage is returned by GetDocs when the search found nothing.
func NoResultsMessage(query, library string) string {
	return fmt.Sprintf("no results found for query: '%s' in %s docs", query, library)
}

// DocsService retrieves documentation context for a query.
type DocsService interface {
	// GetDocs searches the documentation of library for query and returns
	// the matching pages as a single citation-tagged string.
	// Returns an *UnknownLibraryError for unsupported libraries and a
	// *SearchError when the search itself fails. Empty outcomes are
	// reported as NoResultsMessage or NoExtractableContent, not as errors.
	GetDocs(ctx context.Context, query, library string) (string, error)
}
