package api2md

// ExtractResult holds the isolated content from an HTML page.
type ExtractResult struct {
	// Title is the page title, when the strategy can recover one.
	Title string

	// ContentHTML is the narrowest subtree judged to contain the actual
	// documentation body. Boilerplate (nav, header, footer, sidebar,
	// scripts) has been removed. It may be empty when nothing
	// content-bearing survived cleaning; an empty result is not an error.
	ContentHTML string
}

// Extractor isolates main documentation content from rendered HTML,
// removing boilerplate. Isolation is heuristic and best-effort: when no
// known main-content convention matches, implementations fall back to the
// whole cleaned document rather than failing.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
