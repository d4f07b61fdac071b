package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/api2md"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ api2md.ConversionRecorder = (*ConversionService)(nil)

// ConversionService records completed conversions in SQLite, keyed by a
// generated id and carrying a content hash so later runs can tell whether
// a page's output actually changed.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// RecordConversion inserts one conversion row, assigning id, hash, and
// timestamp.
func (s *ConversionService) RecordConversion(ctx context.Context, rec *api2md.ConversionRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.FetchedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (id, source_url, file_path, method, endpoint, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceURL, rec.FilePath, string(rec.Method), rec.Endpoint, rec.ContentHash,
		rec.FetchedAt.Format(time.RFC3339))

	return err
}

// HashContent exposes the content hash used for index rows so callers can
// populate ConversionRecord.ContentHash from the rendered markdown.
func HashContent(content string) string {
	return hashContent(content)
}

// FindConversionsBySourceURL retrieves recorded conversions for a URL,
// most recent first.
func (s *ConversionService) FindConversionsBySourceURL(ctx context.Context, sourceURL string) ([]*api2md.ConversionRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source_url, file_path, method, endpoint, content_hash, fetched_at
		FROM conversions
		WHERE source_url = ?
		ORDER BY fetched_at DESC
	`, sourceURL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*api2md.ConversionRecord
	for rows.Next() {
		rec, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanConversion(rows *sql.Rows) (*api2md.ConversionRecord, error) {
	var rec api2md.ConversionRecord
	var method, fetchedAt string

	if err := rows.Scan(&rec.ID, &rec.SourceURL, &rec.FilePath, &method,
		&rec.Endpoint, &rec.ContentHash, &fetchedAt); err != nil {
		return nil, err
	}

	rec.Method = api2md.Method(method)

	var parseErr error
	rec.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &rec, nil
}
