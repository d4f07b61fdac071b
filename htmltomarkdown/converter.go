// Package htmltomarkdown renders isolated documentation HTML as
// normalized Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/api2md"
)

// Ensure Converter implements api2md.Converter at compile time.
var _ api2md.Converter = (*Converter)(nil)

// blankRuns matches runs of three or more consecutive newlines, i.e. two
// or more blank lines in a row.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// Converter wraps html-to-markdown to convert HTML to Markdown. Headings
// come out in ATX style; script, style, meta, link, and noscript content
// is never rendered. The table plugin matters here: parameter tables are
// the core payload of API documentation pages.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into normalized Markdown: any run of
// consecutive blank lines collapses to a single blank line and
// surrounding whitespace is trimmed. Empty input yields an empty body,
// since an isolated tree with no content-bearing elements still produces
// a document.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result), nil
}
