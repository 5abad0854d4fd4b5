package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Ensure InsertService implements the interface.
var _ driving.InsertService = (*InsertService)(nil)

// InsertService merges a chosen candidate identifier into document
// text. The splice is a deterministic, context-sensitive insertion:
// it never deletes existing text.
type InsertService struct {
	annotate driving.AnnotateService
}

// NewInsertService creates a new insert service.
func NewInsertService(annotate driving.AnnotateService) *InsertService {
	return &InsertService{annotate: annotate}
}

// Insert splices identifier into content at the position dictated by
// the cursor context at point:
//
//   - inside an occurrence: append ",id" at the occurrence's end
//   - just after an occurrence: insert ",id" at point
//   - on the type marker: insert "id," right after the colon
//   - elsewhere: insert a full "litdb:id" link at point
func (s *InsertService) Insert(
	ctx context.Context, content string, point int, identifier string,
) (*domain.Insertion, error) {
	if point < 0 || point > len(content) {
		return nil, fmt.Errorf("%w: point %d outside [0,%d]", domain.ErrInvalidInput, point, len(content))
	}
	if identifier == "" {
		return nil, fmt.Errorf("%w: empty identifier", domain.ErrInvalidInput)
	}

	b, err := s.annotate.AnnotateBuffer(ctx, content)
	if err != nil {
		return nil, err
	}

	cc := domain.ClassifyCursor(b, point)
	logger.Debug("insert: point %d classified as %s", point, cc)

	var at int
	var fragment string

	switch cc {
	case domain.CursorInsideOccurrence:
		occ, _ := b.OccurrenceAt(point)
		at = occ.End
		fragment = domain.ListSeparator + identifier

	case domain.CursorJustAfterOccurrence:
		at = point
		fragment = domain.ListSeparator + identifier

	case domain.CursorOnTypeMarker:
		idx := strings.IndexByte(content[point:], ':')
		if idx < 0 {
			return nil, fmt.Errorf("%w: no delimiter after type marker at %d", domain.ErrInvalidInput, point)
		}
		at = point + idx + 1
		fragment = identifier + domain.ListSeparator

	default: // CursorElsewhere
		at = point
		fragment = domain.LinkPrefix + identifier
	}

	return &domain.Insertion{
		Content:  content[:at] + fragment + content[at:],
		Point:    at + len(fragment),
		Inserted: fragment,
		Context:  cc,
	}, nil
}
