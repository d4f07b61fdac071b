package api2md_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/api2md"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURLList(t *testing.T) {
	t.Parallel()

	t.Run("skips comments and blank lines", func(t *testing.T) {
		t.Parallel()

		input := "https://api.example.com/v1/users\n# skip me\n\n"
		urls, err := api2md.ParseURLList(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, urls, 1)
		assert.Equal(t, "https://api.example.com/v1/users", urls[0])
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		urls, err := api2md.ParseURLList(strings.NewReader("  https://example.com/docs  \n"))

		require.NoError(t, err)
		require.Len(t, urls, 1)
		assert.Equal(t, "https://example.com/docs", urls[0])
	})

	t.Run("preserves input order including duplicates", func(t *testing.T) {
		t.Parallel()

		input := "https://a.example.com\nhttps://b.example.com\nhttps://a.example.com\n"
		urls, err := api2md.ParseURLList(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://a.example.com",
			"https://b.example.com",
			"https://a.example.com",
		}, urls)
	})

	t.Run("empty input yields no URLs", func(t *testing.T) {
		t.Parallel()

		urls, err := api2md.ParseURLList(strings.NewReader("# only a comment\n"))

		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}

func TestReadURLFile(t *testing.T) {
	t.Parallel()

	t.Run("reads URLs from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		require.NoError(t, os.WriteFile(path, []byte("https://example.com/docs\n"), 0o644))

		urls, err := api2md.ReadURLFile(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs"}, urls)
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := api2md.ReadURLFile(filepath.Join(t.TempDir(), "missing.txt"))

		require.Error(t, err)
		assert.Equal(t, api2md.ENOTFOUND, api2md.ErrorCode(err))
	})
}
