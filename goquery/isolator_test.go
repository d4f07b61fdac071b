package goquery_test

import (
	"testing"

	"github.com/fwojciec/api2md"
	"github.com/fwojciec/api2md/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Isolator implements api2md.Extractor at compile time.
var _ api2md.Extractor = (*goquery.Isolator)(nil)

func TestIsolator_Extract(t *testing.T) {
	t.Parallel()

	t.Run("removes navigation chrome", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Users API</title></head>
<body>
<nav><a href="/home">Home</a></nav>
<div class="sidebar">Sidebar links</div>
<div class="breadcrumb">Docs / API / Users</div>
<p>List all users.</p>
<footer>Copyright</footer>
</body>
</html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "List all users.")
		assert.NotContains(t, result.ContentHTML, "Home")
		assert.NotContains(t, result.ContentHTML, "Sidebar links")
		assert.NotContains(t, result.ContentHTML, "Docs / API / Users")
		assert.NotContains(t, result.ContentHTML, "Copyright")
	})

	t.Run("removes comment nodes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><!-- hidden note --><p>Visible</p></body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Visible")
		assert.NotContains(t, result.ContentHTML, "hidden note")
	})

	t.Run("script and style content never survives", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<script>var secret = "tracking";</script>
<style>.x { color: red }</style>
<noscript>Enable JS</noscript>
<p>Documentation body</p>
</body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Documentation body")
		assert.NotContains(t, result.ContentHTML, "tracking")
		assert.NotContains(t, result.ContentHTML, "color: red")
		assert.NotContains(t, result.ContentHTML, "Enable JS")
	})

	t.Run("selects the main element over later conventions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><p>Main region</p></main>
<div class="content"><p>Content div</p></div>
</body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Main region")
		assert.NotContains(t, result.ContentHTML, "Content div")
	})

	t.Run("first matching element wins within a selector", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="content"><p>First</p></div>
<div class="content"><p>Second</p></div>
</body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "First")
		assert.NotContains(t, result.ContentHTML, "Second")
	})

	t.Run("matches documentation container conventions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div id="documentation"><p>By id</p></div>
<p>Stray paragraph</p>
</body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "By id")
		assert.NotContains(t, result.ContentHTML, "Stray paragraph")
	})

	t.Run("falls back to the whole cleaned page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav>Nav</nav>
<p>Orphan content with no container</p>
</body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Orphan content with no container")
		assert.NotContains(t, result.ContentHTML, "Nav")
	})

	t.Run("an empty cleaned tree is not an error", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><nav>Only nav</nav></body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "Only nav")
	})

	t.Run("recovers the page title", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title> Users API </title></head><body><main>x</main></body></html>`

		iso := goquery.NewIsolator()
		result, err := iso.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Users API", result.Title)
	})
}

func TestSelectorLists(t *testing.T) {
	t.Parallel()

	t.Run("content selector priority starts with semantic main", func(t *testing.T) {
		t.Parallel()

		selectors := goquery.ContentSelectors()
		require.NotEmpty(t, selectors)
		assert.Equal(t, "main", selectors[0])
		assert.Equal(t, "#documentation", selectors[len(selectors)-1])
	})

	t.Run("denylist covers structural and class conventions", func(t *testing.T) {
		t.Parallel()

		denylist := goquery.DenylistSelectors()
		assert.Contains(t, denylist, "nav")
		assert.Contains(t, denylist, ".breadcrumb")
		assert.Contains(t, denylist, ".pagination")
		assert.Contains(t, denylist, "aside")
	})
}
