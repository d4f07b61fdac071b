package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/api2md"
	"golang.org/x/net/html"
)

// Ensure Classifier implements api2md.Classifier at compile time.
var _ api2md.Classifier = (*Classifier)(nil)

// methodIndicatorTags are the tag types typically used for inline HTTP
// method badges and labels.
const methodIndicatorTags = "span, div, code, badge"

// methodWord matches a whole-word HTTP method token, case-insensitively.
var methodWord = regexp.MustCompile(`(?i)\b(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\b`)

// PathPattern is one heuristic for recovering an endpoint path from
// flattened page text. Group designates the path-bearing capture group
// (0 for the whole match).
type PathPattern struct {
	Name  string
	Re    *regexp.Regexp
	Group int
}

// PathPatterns returns the ordered path inference cascade, from most
// specific to most general. The first pattern that yields any match wins,
// and within that pattern the first match in text order is used.
func PathPatterns() []PathPattern {
	return []PathPattern{
		{Name: "api-rooted", Re: regexp.MustCompile(`/api/[^"\s<>]+`), Group: 0},
		{Name: "versioned", Re: regexp.MustCompile(`/v\d+/[^"\s<>]+`), Group: 0},
		{Name: "url-path", Re: regexp.MustCompile(`https?://[^/\s]+(/[^"\s<>]+)`), Group: 1},
		{Name: "slash-token", Re: regexp.MustCompile(`[^"\s<>]*(/[a-zA-Z0-9_\-/{}]+)`), Group: 1},
	}
}

// Classifier infers HTTP method and endpoint path from isolated
// documentation HTML. Documentation pages encode endpoint identity
// inconsistently (inline badges, URL fragments, breadcrumbs), so it runs
// an ordered cascade of increasingly permissive heuristics.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scans the HTML and returns the inferred endpoint identity.
// Absent any method indicator the method is GET; absent any path-like
// text the endpoint is the "unknown" sentinel.
func (c *Classifier) Classify(rawHTML string) (*api2md.EndpointInfo, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, api2md.Errorf(api2md.EINVALID, "failed to parse HTML: %v", err)
	}

	info := &api2md.EndpointInfo{
		Method:   c.inferMethod(doc),
		Endpoint: c.inferEndpoint(doc),
	}
	return info, nil
}

// inferMethod finds the first badge-like element whose own text carries a
// whole-word method token. When that element's text mentions several
// methods, they are preferred in declaration order.
func (c *Classifier) inferMethod(doc *goquery.Document) api2md.Method {
	method := api2md.MethodGet

	var indicator *goquery.Selection
	doc.Find(methodIndicatorTags).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(s.Nodes) > 0 && methodWord.MatchString(ownText(s.Nodes[0])) {
			indicator = s
			return false
		}
		return true
	})
	if indicator == nil {
		return method
	}

	text := strings.ToUpper(strings.TrimSpace(indicator.Text()))
	for _, m := range api2md.Methods() {
		if strings.Contains(text, string(m)) {
			return m
		}
	}
	return method
}

// inferEndpoint runs the path pattern cascade over the flattened text
// content and sanitizes the first hit.
func (c *Classifier) inferEndpoint(doc *goquery.Document) string {
	text := doc.Text()

	for _, pattern := range PathPatterns() {
		match := pattern.Re.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		return api2md.SanitizeEndpoint(match[pattern.Group])
	}
	return api2md.UnknownEndpoint
}

// ownText concatenates the direct text-node children of n, ignoring
// descendant elements. Matching on own text keeps large wrapper divs from
// shadowing the actual inline badge.
func ownText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
