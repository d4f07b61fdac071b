package api2md

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations use browser automation to handle JavaScript-rendered
// content and are expected to expand collapsed content regions before
// capturing the page, so hidden parameter tables and code samples reach
// the rest of the pipeline.
type Fetcher interface {
	// Fetch navigates to the URL, waits for the page to render, reveals
	// collapsed content on a best-effort basis, and returns the rendered
	// HTML. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter throttles operations against a domain. The batch pipeline
// waits on it before every navigation so sequential conversions stay
// polite to the documentation host.
type DomainLimiter interface {
	Wait(ctx context.Context, domain string) error
}
