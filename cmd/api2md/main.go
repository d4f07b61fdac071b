package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/api2md"
	"github.com/fwojciec/api2md/fs"
	"github.com/fwojciec/api2md/goquery"
	"github.com/fwojciec/api2md/htmltomarkdown"
	"github.com/fwojciec/api2md/rate"
	"github.com/fwojciec/api2md/rod"
	"github.com/fwojciec/api2md/sqlite"
	"github.com/fwojciec/api2md/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout, "\nConversion interrupted by user.")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
// Exactly one of --urls or --url must be provided.
type CLI struct {
	URLs      string        `name:"urls" help:"Path to text file containing URLs (one per line)." xor:"input" required:"" placeholder:"FILE"`
	URL       string        `help:"Single URL to convert." xor:"input" required:""`
	Output    string        `help:"Output directory for markdown files." default:"./output" placeholder:"DIR"`
	Timeout   time.Duration `default:"30s" help:"Navigation timeout per page."`
	Rate      float64       `default:"1" help:"Max requests per second per domain."`
	Extractor string        `default:"heuristic" enum:"heuristic,trafilatura" help:"Content isolation strategy."`
	Verbose   bool          `short:"v" help:"Enable debug logging."`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Configuration failures
// (missing URL file, empty URL set, bad flags) are returned before any
// browser session starts; per-URL failures are reported on stdout and
// reflected only in the summary counts.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("api2md"),
		kong.Description("Convert API documentation web pages to clean Markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	urls, err := m.gatherURLs(cli)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Found %d URL(s) to process\n", len(urls))

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// The output directory exists before any conversion begins.
	writer := fs.NewWriter(cli.Output)
	if err := writer.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	recorder := m.openRecorder(cli.Output, logger)
	defer recorder.close()

	rodFetcher, err := rod.NewFetcher(
		rod.WithNavTimeout(cli.Timeout),
		rod.WithRevealObserver(rod.NewRevealLogger(logger)),
	)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer rodFetcher.Close()

	pipeline := &Pipeline{
		Fetcher:    rod.NewLoggingFetcher(rodFetcher, logger),
		Extractor:  m.newExtractor(cli.Extractor),
		Classifier: goquery.NewClassifier(),
		Converter:  htmltomarkdown.NewConverter(),
		Writer:     writer,
		Recorder:   recorder.service,
		Limiter:    rate.NewDomainLimiter(cli.Rate),
		Logger:     logger,
		Started: func(url string) {
			fmt.Fprintf(stdout, "Scraping: %s\n", url)
		},
		Completed: func(result api2md.ConversionResult) {
			if result.Succeeded {
				fmt.Fprintf(stdout, "Saved: %s\n", result.FilePath)
			} else {
				fmt.Fprintf(stdout, "Error scraping %s: %v\n", result.SourceURL, result.Err)
			}
		},
	}

	results, err := pipeline.ConvertAll(ctx, urls)
	if err != nil {
		return err
	}

	successful := 0
	for _, r := range results {
		if r.Succeeded {
			successful++
		}
	}

	outputDir, err := filepath.Abs(cli.Output)
	if err != nil {
		outputDir = cli.Output
	}

	fmt.Fprintf(stdout, "\nConversion complete!\n")
	fmt.Fprintf(stdout, "Successfully converted: %d/%d URLs\n", successful, len(results))
	fmt.Fprintf(stdout, "Output directory: %s\n", outputDir)

	return nil
}

// gatherURLs resolves the effective URL set from the flags.
func (m *Main) gatherURLs(cli *CLI) ([]string, error) {
	var urls []string
	if cli.URLs != "" {
		var err error
		urls, err = api2md.ReadURLFile(cli.URLs)
		if err != nil {
			return nil, err
		}
	} else {
		urls = []string{cli.URL}
	}

	if len(urls) == 0 {
		return nil, api2md.Errorf(api2md.EINVALID, "no URLs to process")
	}
	return urls, nil
}

// newExtractor selects the content isolation strategy.
func (m *Main) newExtractor(name string) api2md.Extractor {
	if name == "trafilatura" {
		return trafilatura.NewExtractor()
	}
	return goquery.NewIsolator()
}

// indexHandle pairs the optional conversion index with its database so
// both can be torn down together.
type indexHandle struct {
	db      *sqlite.DB
	service api2md.ConversionRecorder
}

func (h *indexHandle) close() {
	if h.db != nil {
		_ = h.db.Close()
	}
}

// openRecorder opens the conversion index inside the output directory.
// The index is supplementary, so a failure to open it only logs a warning
// and conversions proceed unindexed.
func (m *Main) openRecorder(outputDir string, logger *slog.Logger) *indexHandle {
	db := sqlite.NewDB(filepath.Join(outputDir, "index.db"))
	if err := db.Open(); err != nil {
		logger.Warn("conversion index unavailable", "err", err)
		return &indexHandle{}
	}
	return &indexHandle{db: db, service: sqlite.NewConversionService(db)}
}
