package api2md

import (
	"context"
	"strings"
	"time"
)

// Document represents one converted documentation page, ready to be named
// and written.
type Document struct {
	SourceURL string
	Info      EndpointInfo
	Content   string // Markdown body, already normalized
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if !d.Info.Method.Valid() {
		return Errorf(EINVALID, "document method %q not recognized", d.Info.Method)
	}
	return nil
}

// Render produces the final Markdown text: a fixed three-line metadata
// block as HTML comments (source URL, method, endpoint, in that order),
// one blank line, then the body. The metadata block is always present,
// even when method and endpoint carry defaulted values.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString("<!-- Source: ")
	b.WriteString(d.SourceURL)
	b.WriteString(" -->\n<!-- Method: ")
	b.WriteString(string(d.Info.Method))
	b.WriteString(" -->\n<!-- Endpoint: ")
	b.WriteString(d.Info.Endpoint)
	b.WriteString(" -->\n\n")
	b.WriteString(d.Content)
	return b.String()
}

// DocumentWriter persists rendered documents under an output directory and
// returns the path written.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *Document) (path string, err error)
}

// ConversionResult reports the outcome of converting one URL. Exactly one
// result is produced per input URL; a failed conversion degrades to
// Succeeded=false and never raises past the pipeline boundary.
type ConversionResult struct {
	SourceURL string
	FilePath  string
	Succeeded bool
	Err       error
}

// ConversionRecord is the persisted index entry for one successful
// conversion.
type ConversionRecord struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	FilePath    string    `json:"filePath"`
	Method      Method    `json:"method"`
	Endpoint    string    `json:"endpoint"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ConversionRecord) Validate() error {
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	if r.FilePath == "" {
		return Errorf(EINVALID, "record file path required")
	}
	return nil
}

// ConversionRecorder records completed conversions in an index.
type ConversionRecorder interface {
	RecordConversion(ctx context.Context, rec *ConversionRecord) error
}
