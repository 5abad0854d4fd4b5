package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Ensure AnnotateService implements the interface.
var _ driving.AnnotateService = (*AnnotateService)(nil)

// AnnotateService activates litdb link occurrences: for each
// identifier in an occurrence's target list it locates the literal
// text and attaches a key plus the citation resolved from the store.
type AnnotateService struct {
	store  driven.RecordStore
	parser driven.DocumentParser
}

// NewAnnotateService creates a new annotate service.
func NewAnnotateService(store driven.RecordStore, parser driven.DocumentParser) *AnnotateService {
	return &AnnotateService{
		store:  store,
		parser: parser,
	}
}

// AnnotateBuffer parses content and annotates every litdb occurrence
// it contains, in document order. Identifiers that cannot be located
// are skipped with a warning.
func (s *AnnotateService) AnnotateBuffer(ctx context.Context, content string) (*domain.Buffer, error) {
	logger.Section("Annotation Pass")

	links, err := s.parser.Links([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	logger.Debug("Found %d link occurrence(s)", len(links))

	b := &domain.Buffer{Text: content}
	for _, ln := range links {
		if err := s.AnnotateOccurrence(ctx, b, ln.TargetStart, ln.TargetEnd, ln.Target, false); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// AnnotateOccurrence annotates one occurrence whose identifier-list
// text spans [start, end) of b.Text. Each identifier is searched
// forward from the current scan position, so repeated identifiers
// match left-to-right without overlap.
//
// When an identifier's literal text cannot be found inside the bounds
// the occurrence is malformed: strict mode fails with
// domain.ErrSpanMismatch, otherwise the identifier is skipped and a
// warning logged.
func (s *AnnotateService) AnnotateOccurrence(
	ctx context.Context, b *domain.Buffer, start, end int, target string, strict bool,
) error {
	if start < 0 || end > len(b.Text) || start > end {
		return fmt.Errorf("%w: occurrence bounds [%d,%d) outside buffer", domain.ErrInvalidInput, start, end)
	}

	ids := domain.SplitTarget(target)
	occ := domain.LinkOccurrence{Start: start, End: end}

	scan := start
	for _, id := range ids {
		idx := strings.Index(b.Text[scan:end], id)
		if idx < 0 {
			if strict {
				return fmt.Errorf("%w: %q in [%d,%d)", domain.ErrSpanMismatch, id, start, end)
			}
			logger.Warn("annotate: identifier %q not found in span [%d,%d), skipping", id, start, end)
			continue
		}
		at := scan + idx

		tooltip, err := s.store.Lookup(ctx, domain.FieldCitation, id)
		if err != nil {
			return fmt.Errorf("resolving citation for %q: %w", id, err)
		}

		occ.Annotations = append(occ.Annotations, domain.Annotation{
			ID:      uuid.New().String(),
			Start:   at,
			End:     at + len(id),
			Key:     id,
			Tooltip: tooltip,
		})
		scan = at + len(id)
	}

	b.AddOccurrence(occ)
	return nil
}
