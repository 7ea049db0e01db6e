package docsearch

import (
	"strings"
	"unicode/utf8"
)

// MaxContentLength is the default cap, in characters, on one source's text.
const MaxContentLength = 4000

// TruncationMarker is appended to text cut at the content cap.
const TruncationMarker = "\n\n...[Content truncated for length]"

// SourceSeparator separates sources in a formatted bundle.
var SourceSeparator = "\n\n" + strings.Repeat("=", 80) + "\n\n"

// Source is one page included in a documentation bundle.
type Source struct {
	URL  string
	Text string
}

// TruncateContent caps text at limit characters, appending TruncationMarker
// when anything was cut. A limit of zero or less disables the cap.
func TruncateContent(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	// Walk rune boundaries so multi-byte characters are never split.
	n := 0
	for i := range text {
		if n == limit {
			return text[:i] + TruncationMarker
		}
		n++
	}
	return text
}

// FormatSources renders sources as "SOURCE: <url>" blocks in the given order.
func FormatSources(sources []Source) string {
	if len(sources) == 0 {
		return ""
	}

	parts := make([]string, 0, len(sources))
	for _, src := range sources {
		parts = append(parts, "SOURCE: "+src.URL+"\n\n"+src.Text)
	}

	return strings.Join(parts, SourceSeparator)
}
