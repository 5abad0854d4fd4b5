package driven

import (
	"context"
	"time"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

// RecordStore provides read-only access to the litdb database.
// Implementations must never mutate the store and must be safe for
// multiple simultaneous read-only connections.
type RecordStore interface {
	// Lookup extracts one field from a record's extra payload.
	// A missing row or null field returns (nil, nil): a lookup miss is
	// a valid absent result, not an error.
	Lookup(ctx context.Context, field, source string) (*string, error)

	// ListAll returns a (citation, source) candidate for every record,
	// in rowid order. Citations may be nil.
	ListAll(ctx context.Context) ([]domain.Candidate, error)

	// Fulltext runs a ranked full-text match returning highlighted
	// snippets.
	Fulltext(ctx context.Context, query string, limit int) ([]domain.FulltextHit, error)

	// ModTime returns the database file's last-modified time.
	ModTime() (time.Time, error)

	// Close releases the underlying connection.
	Close() error
}
