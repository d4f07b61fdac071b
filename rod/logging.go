package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/api2md"
)

// Ensure LoggingFetcher implements api2md.Fetcher.
var _ api2md.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-page logging. Successful fetches
// log at info with size and timing; failed fetches log at warn with the
// error code, since a failed page is expected to surface in the batch
// summary rather than abort the run.
type LoggingFetcher struct {
	next   api2md.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next api2md.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	begin := time.Now()
	html, err = f.next.Fetch(ctx, url)

	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", api2md.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}

	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// NewRevealLogger returns a reveal observer that logs each heuristic's
// outcome. Wholesale heuristic failures log as warnings; everything else
// logs at debug level.
func NewRevealLogger(logger *slog.Logger) api2md.RevealObserverFunc {
	return func(a api2md.RevealAttempt) {
		if a.Err != nil {
			logger.Warn("reveal heuristic failed",
				"heuristic", a.Heuristic,
				"err", a.Err,
			)
			return
		}
		logger.Debug("reveal heuristic",
			"heuristic", a.Heuristic,
			"matched", a.Matched,
			"expanded", a.Expanded,
		)
	}
}
