package driving

import (
	"context"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

// SearchService exposes the search features: full-text over the
// database, and semantic/similarity/ask via the litdb subprocess.
type SearchService interface {
	Fulltext(ctx context.Context, query string, limit int) ([]domain.FulltextHit, error)
	Semantic(ctx context.Context, query string, n int) ([]domain.Candidate, error)
	Similar(ctx context.Context, source string, n int) ([]domain.Candidate, error)
	Ask(ctx context.Context, prompt string) (string, error)
}

// AnnotateService activates litdb links: it scans document text and
// attaches key and tooltip annotations to each identifier span.
type AnnotateService interface {
	// AnnotateBuffer parses content and annotates every occurrence.
	AnnotateBuffer(ctx context.Context, content string) (*domain.Buffer, error)

	// AnnotateOccurrence annotates one occurrence whose target text
	// spans [start, end). In strict mode an identifier that cannot be
	// located fails with domain.ErrSpanMismatch; otherwise it is
	// skipped with a warning.
	AnnotateOccurrence(ctx context.Context, b *domain.Buffer, start, end int, target string, strict bool) error
}

// InsertService splices a chosen candidate identifier into document
// text at the cursor, dispatching on the classified cursor context.
type InsertService interface {
	Insert(ctx context.Context, content string, point int, identifier string) (*domain.Insertion, error)
}

// ExportService walks a document's litdb links and writes a
// bibliography file.
type ExportService interface {
	Export(ctx context.Context, content []byte, dest string, format domain.ExportFormat) (*domain.ExportResult, error)
}

// CandidateService provides the cached candidate list for insertion.
type CandidateService interface {
	Candidates(ctx context.Context) ([]domain.Candidate, error)

	// Invalidate forces regeneration on the next Candidates call.
	Invalidate()
}

// RecordService resolves individual record fields.
type RecordService interface {
	Citation(ctx context.Context, source string) (*string, error)
	Bibtex(ctx context.Context, source string) (*string, error)
}
