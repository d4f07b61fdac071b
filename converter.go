package api2md

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown using ATX-style
	// headings. The input should be clean HTML (e.g., from an Extractor);
	// script/style/meta/link/noscript constructs are never rendered.
	// The result carries no runs of three or more blank lines and no
	// leading or trailing whitespace.
	Convert(html string) (string, error)
}
