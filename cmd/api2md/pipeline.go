package main

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/fwojciec/api2md"
	"github.com/fwojciec/api2md/sqlite"
)

// Pipeline converts URLs to markdown files by orchestrating fetching,
// isolation, classification, rendering, and writing through injected
// dependencies. URLs are processed strictly sequentially, in input order,
// against a single shared browser page.
type Pipeline struct {
	Fetcher    api2md.Fetcher
	Extractor  api2md.Extractor
	Classifier api2md.Classifier
	Converter  api2md.Converter
	Writer     api2md.DocumentWriter

	// Recorder is optional; a failed index insert degrades to a warning
	// because the markdown file is already on disk.
	Recorder api2md.ConversionRecorder

	// Limiter is optional per-domain politeness throttling before each
	// navigation.
	Limiter api2md.DomainLimiter

	// Started and Completed report batch progress. Either may be nil.
	Started   func(url string)
	Completed func(result api2md.ConversionResult)

	Logger *slog.Logger
}

// ConvertAll processes every URL and returns one ConversionResult per
// input URL, in input order. A failure inside one URL's conversion never
// propagates past that URL's boundary; only context cancellation stops
// the batch, and then the error is returned alongside the results
// gathered so far.
func (p *Pipeline) ConvertAll(ctx context.Context, urls []string) ([]api2md.ConversionResult, error) {
	results := make([]api2md.ConversionResult, 0, len(urls))

	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if p.Started != nil {
			p.Started(u)
		}

		path, err := p.convert(ctx, u)

		// Cancellation mid-URL ends the batch rather than counting as a
		// page failure.
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		result := api2md.ConversionResult{
			SourceURL: u,
			FilePath:  path,
			Succeeded: err == nil,
			Err:       err,
		}
		results = append(results, result)

		if p.Completed != nil {
			p.Completed(result)
		}
	}

	return results, nil
}

// convert runs the full per-URL pipeline and returns the path written.
func (p *Pipeline) convert(ctx context.Context, sourceURL string) (string, error) {
	if err := p.throttle(ctx, sourceURL); err != nil {
		return "", err
	}

	html, err := p.Fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return "", err
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		return "", err
	}

	info, err := p.Classifier.Classify(extracted.ContentHTML)
	if err != nil {
		return "", err
	}

	content, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}

	doc := &api2md.Document{
		SourceURL: sourceURL,
		Info:      *info,
		Content:   content,
	}

	path, err := p.Writer.WriteDocument(ctx, doc)
	if err != nil {
		return "", err
	}

	p.record(ctx, doc, path)

	return path, nil
}

// throttle waits for the per-domain rate limit, when one is configured.
func (p *Pipeline) throttle(ctx context.Context, sourceURL string) error {
	if p.Limiter == nil {
		return nil
	}
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		// Unparseable URLs fail in the fetcher with a better message.
		return nil
	}
	return p.Limiter.Wait(ctx, u.Host)
}

// record indexes a successful conversion. Index failures are warnings:
// the file is already written, so the conversion stays successful.
func (p *Pipeline) record(ctx context.Context, doc *api2md.Document, path string) {
	if p.Recorder == nil {
		return
	}

	rec := &api2md.ConversionRecord{
		SourceURL:   doc.SourceURL,
		FilePath:    path,
		Method:      doc.Info.Method,
		Endpoint:    doc.Info.Endpoint,
		ContentHash: sqlite.HashContent(doc.Render()),
	}
	if err := p.Recorder.RecordConversion(ctx, rec); err != nil && p.Logger != nil {
		p.Logger.Warn("failed to index conversion",
			"url", doc.SourceURL,
			"err", err,
		)
	}
}
