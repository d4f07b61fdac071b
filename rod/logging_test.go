package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/api2md"
	"github.com/fwojciec/api2md/mock"
	"github.com/fwojciec/api2md/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := rod.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures at warn with the error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", api2md.Errorf(api2md.EUNAVAILABLE, "navigation timed out")
			},
		}

		fetcher := rod.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "fetch failed")
		assert.Contains(t, output, "code=unavailable")
	})

	t.Run("close delegates to the wrapped fetcher", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := rod.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler))

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}

func TestNewRevealLogger(t *testing.T) {
	t.Parallel()

	t.Run("heuristic failures log as warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		observe := rod.NewRevealLogger(logger)
		observe(api2md.RevealAttempt{
			Heuristic: "expand-all",
			Err:       api2md.Errorf(api2md.EINTERNAL, "selector evaluation failed"),
		})

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "heuristic=expand-all")
	})

	t.Run("outcomes log at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		observe := rod.NewRevealLogger(logger)
		observe(api2md.RevealAttempt{Heuristic: "closed-details", Matched: 3, Expanded: 3})

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "matched=3")
		assert.Contains(t, output, "expanded=3")
	})
}
