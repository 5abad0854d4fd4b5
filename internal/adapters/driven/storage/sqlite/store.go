package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.RecordStore = (*Store)(nil)

// Store is a read-only SQLite accessor for a litdb database.
// database/sql pools connections, so concurrent read-only use is safe.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens the litdb database at path read-only. A missing file
// or a file that is not a litdb database fails with
// domain.ErrStoreUnavailable.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no database path configured", domain.ErrStoreUnavailable)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrStoreUnavailable, path)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrStoreUnavailable, path, err)
	}

	// Probe the expected schema so a bad file fails here, not on the
	// first user-visible query.
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sources").Scan(&n); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s is not a litdb database: %v", domain.ErrStoreUnavailable, path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Lookup extracts one field from a record's extra payload. A missing
// row or a null field returns (nil, nil).
func (s *Store) Lookup(ctx context.Context, field, source string) (*string, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT json_extract(extra, ?) FROM sources WHERE source = ?
	`, "$."+field, source)

	var value sql.NullString
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("looking up %s for %s: %w", field, source, err)
	}

	if !value.Valid {
		return nil, nil
	}
	return &value.String, nil
}

// ListAll returns a (citation, source) candidate for every record.
func (s *Store) ListAll(ctx context.Context) ([]domain.Candidate, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT json_extract(extra, '$.citation'), source FROM sources ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate //nolint:prealloc // size unknown from query
	for rows.Next() {
		var citation sql.NullString
		var source string
		if err := rows.Scan(&citation, &source); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}

		c := domain.Candidate{Source: source}
		if citation.Valid {
			c.Citation = &citation.String
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}

	return candidates, nil
}

// Fulltext runs a ranked full-text match with highlighted snippets.
func (s *Store) Fulltext(ctx context.Context, query string, limit int) ([]domain.FulltextHit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT source, snippet(fulltext, 1, '', '', '', 16)
		FROM fulltext
		WHERE text MATCH ? ORDER BY rank LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fulltext query: %w", err)
	}
	defer rows.Close()

	var hits []domain.FulltextHit //nolint:prealloc // size unknown from query
	for rows.Next() {
		var hit domain.FulltextHit
		if err := rows.Scan(&hit.Source, &hit.Snippet); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, hit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hits: %w", err)
	}

	return hits, nil
}

// ModTime returns the database file's last-modified time.
func (s *Store) ModTime() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", domain.ErrStoreUnavailable, s.path)
	}
	return info.ModTime(), nil
}
