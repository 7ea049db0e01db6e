// Package htmltomarkdown renders extracted documentation HTML as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/docsearch"
)

var _ docsearch.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with the CommonMark and table plugins.
// It is safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docsearch.Errorf(docsearch.EINVALID, "empty HTML input")
	}

	var md string
	var err error
	if pageURL != "" {
		md, err = c.conv.ConvertString(html, converter.WithDomain(pageURL))
	} else {
		md, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", docsearch.Errorf(docsearch.EINTERNAL, "convert to markdown: %v", err)
	}

	return strings.TrimSpace(md), nil
}
