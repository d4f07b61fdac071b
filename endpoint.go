package api2md

import (
	"regexp"
	"strings"
)

// Method is an HTTP method inferred from documentation text.
type Method string

// The fixed set of recognized HTTP methods. Declaration order doubles as
// the preference order when a single text fragment mentions several
// methods.
const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods returns all recognized methods in preference order.
func Methods() []Method {
	return []Method{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodDelete,
		MethodPatch,
		MethodHead,
		MethodOptions,
	}
}

// Valid reports whether m is one of the recognized methods.
func (m Method) Valid() bool {
	for _, known := range Methods() {
		if m == known {
			return true
		}
	}
	return false
}

// UnknownEndpoint is the sentinel endpoint token used when path inference
// yields no match.
const UnknownEndpoint = "unknown"

// EndpointInfo identifies one documented API operation. It is immutable
// once produced.
type EndpointInfo struct {
	// Method is always a member of the fixed method set; it defaults to
	// GET when the page carries no method indicator.
	Method Method

	// Endpoint is the sanitized, hyphenated path token, or
	// UnknownEndpoint when no path could be inferred. It never contains
	// whitespace, quotes, or angle brackets.
	Endpoint string
}

// Classifier infers endpoint identity from isolated documentation HTML.
type Classifier interface {
	// Classify scans the HTML for method badges and path-like text and
	// returns the inferred EndpointInfo. Absent indicators degrade to
	// the GET / UnknownEndpoint defaults rather than failing.
	Classify(html string) (*EndpointInfo, error)
}

var (
	endpointDisallowed = regexp.MustCompile(`[^\w\-/{}]`)
)

// SanitizeEndpoint normalizes a raw inferred path into an endpoint token:
// characters outside word/hyphen/slash/brace are stripped, slashes become
// hyphens, and leading/trailing hyphens are trimmed. An empty result
// collapses to UnknownEndpoint.
func SanitizeEndpoint(raw string) string {
	if raw == "" {
		return UnknownEndpoint
	}
	s := endpointDisallowed.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return UnknownEndpoint
	}
	return s
}
