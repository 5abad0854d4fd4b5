package services

import (
	"context"
	"fmt"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService resolves individual record fields. A nil result means
// the record or field is absent, which callers treat as a valid miss.
type RecordService struct {
	store driven.RecordStore
}

// NewRecordService creates a new record service.
func NewRecordService(store driven.RecordStore) *RecordService {
	return &RecordService{store: store}
}

// Citation returns the citation string for source, nil on a miss.
func (s *RecordService) Citation(ctx context.Context, source string) (*string, error) {
	v, err := s.store.Lookup(ctx, domain.FieldCitation, source)
	if err != nil {
		return nil, fmt.Errorf("looking up citation: %w", err)
	}
	return v, nil
}

// Bibtex returns the bibtex entry for source, nil on a miss.
func (s *RecordService) Bibtex(ctx context.Context, source string) (*string, error) {
	v, err := s.store.Lookup(ctx, domain.FieldBibtex, source)
	if err != nil {
		return nil, fmt.Errorf("looking up bibtex: %w", err)
	}
	return v, nil
}
