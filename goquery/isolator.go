// Package goquery provides CSS-selector based content isolation and
// endpoint classification for rendered documentation pages.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/api2md"
	"golang.org/x/net/html"
)

// Ensure Isolator implements api2md.Extractor at compile time.
var _ api2md.Extractor = (*Isolator)(nil)

// DenylistSelectors returns the fixed list of structural/navigational
// selectors removed before content isolation: navigation bars, headers,
// footers, sidebars, menus, breadcrumbs, pagination controls, and asides,
// matched by tag name and by common class conventions.
func DenylistSelectors() []string {
	return []string{
		"nav", "header", "footer",
		".nav", ".navbar", ".header", ".footer",
		".sidebar", ".menu", ".breadcrumb", ".pagination",
		"aside",
	}
}

// ContentSelectors returns the priority-ordered list of main-content
// selectors. The first selector that matches any element wins; there is no
// scoring and no merging of multiple matches.
func ContentSelectors() []string {
	return []string{
		"main", ".content", ".main-content", ".documentation",
		".api-docs", ".doc-content", "article", ".article",
		"#content", "#main", "#documentation",
	}
}

// Isolator selects the narrowest subtree judged to contain the actual
// documentation content. API doc sites have no universal markup
// convention, so it runs a priority list of known conventions with a safe
// fallback (the whole cleaned page). No content-density scoring is used.
type Isolator struct{}

// NewIsolator creates a new Isolator.
func NewIsolator() *Isolator {
	return &Isolator{}
}

// Extract cleans the document and returns the isolated main content.
// An empty cleaned tree is returned as-is; isolation never fails on empty
// content.
func (i *Isolator) Extract(rawHTML string) (*api2md.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, api2md.Errorf(api2md.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, node := range doc.Nodes {
		removeComments(node)
	}

	for _, selector := range DenylistSelectors() {
		doc.Find(selector).Remove()
	}

	// Script/style content must never reach later stages.
	doc.Find("script, style, noscript").Remove()

	for _, selector := range ContentSelectors() {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		return &api2md.ExtractResult{Title: title, ContentHTML: contentHTML}, nil
	}

	// No known convention matched; fall back to the whole cleaned page.
	contentHTML, err := renderNodes(doc.Nodes)
	if err != nil {
		return nil, err
	}
	return &api2md.ExtractResult{Title: title, ContentHTML: contentHTML}, nil
}

// removeComments strips all comment nodes from the tree rooted at n.
func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}

// renderNodes serializes document nodes back to markup.
func renderNodes(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
