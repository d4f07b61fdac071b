// Package fs provides file-based output for converted documentation.
package fs

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/api2md"
)

var (
	nameDisallowed = regexp.MustCompile(`[^\w\-]`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// Filename derives a filesystem-safe base name for one conversion.
// When an endpoint was inferred the name is <method>-<endpoint>; otherwise
// it falls back to the URL's last two non-empty path segments, or to the
// host with dots replaced by hyphens when the URL has no path at all.
// Example: GET + "v1-users" → "GET-v1-users.md".
func Filename(method api2md.Method, endpoint, rawURL string) string {
	var base string
	if endpoint != "" && endpoint != api2md.UnknownEndpoint {
		base = string(method) + "-" + endpoint
	} else {
		base = string(method) + "-" + urlFallback(rawURL)
	}

	base = nameDisallowed.ReplaceAllString(base, "-")
	base = hyphenRuns.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	return base + ".md"
}

// urlFallback names a page by its URL when no endpoint was inferred.
func urlFallback(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return api2md.UnknownEndpoint
	}

	var parts []string
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	if len(parts) > 0 {
		return strings.Join(parts, "-")
	}
	if u.Host != "" {
		return strings.ReplaceAll(u.Host, ".", "-")
	}
	return api2md.UnknownEndpoint
}

// Ensure Writer implements api2md.DocumentWriter at compile time.
var _ api2md.DocumentWriter = (*Writer)(nil)

// Writer writes rendered documents as markdown files under a base
// directory. Two URLs can derive the same name; rather than silently
// overwriting, the writer appends a per-run counter to later occurrences
// (name.md, name-2.md, name-3.md, ...). Re-running an unchanged batch
// reproduces the same names because URLs are processed in input order.
type Writer struct {
	baseDir string
	seen    map[string]int
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{
		baseDir: baseDir,
		seen:    make(map[string]int),
	}
}

// EnsureDir creates the output directory if it is absent.
func (w *Writer) EnsureDir() error {
	return os.MkdirAll(w.baseDir, 0o755)
}

// WriteDocument renders the document and writes it to disk, returning the
// path written. An existing file of the same name from a previous run is
// overwritten.
func (w *Writer) WriteDocument(ctx context.Context, doc *api2md.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := doc.Validate(); err != nil {
		return "", err
	}

	name := Filename(doc.Info.Method, doc.Info.Endpoint, doc.SourceURL)
	w.seen[name]++
	if n := w.seen[name]; n > 1 {
		name = fmt.Sprintf("%s-%d.md", strings.TrimSuffix(name, ".md"), n)
	}

	if err := w.EnsureDir(); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, []byte(doc.Render()), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
