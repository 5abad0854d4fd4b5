package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// defaultLimit matches the litdb CLI's default result count.
const defaultLimit = 3

// SearchService provides full-text search against the record store
// and delegates semantic search, similarity search and the ask
// feature to the litdb subprocess.
type SearchService struct {
	store  driven.RecordStore
	runner driven.LitdbRunner
}

// NewSearchService creates a new search service. The runner is
// optional (can be nil); without it the subprocess-backed features
// return domain.ErrSubprocess.
func NewSearchService(store driven.RecordStore, runner driven.LitdbRunner) *SearchService {
	return &SearchService{
		store:  store,
		runner: runner,
	}
}

// Fulltext runs a ranked full-text match over the store.
func (s *SearchService) Fulltext(ctx context.Context, query string, limit int) ([]domain.FulltextHit, error) {
	logger.Section("Fulltext Search")

	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.FulltextHit{}, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	logger.Debug("Query: %q, limit %d", query, limit)

	hits, err := s.store.Fulltext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("fulltext search: %w", err)
	}
	logger.Debug("%d hit(s)", len(hits))
	return hits, nil
}

// Semantic runs a vector-similarity search for a free-text query via
// the litdb subprocess.
func (s *SearchService) Semantic(ctx context.Context, query string, n int) ([]domain.Candidate, error) {
	if s.runner == nil {
		return nil, fmt.Errorf("%w: litdb command not configured", domain.ErrSubprocess)
	}
	if n <= 0 {
		n = defaultLimit
	}
	return s.runner.VSearch(ctx, query, n)
}

// Similar returns records related to an existing source via the litdb
// subprocess.
func (s *SearchService) Similar(ctx context.Context, source string, n int) ([]domain.Candidate, error) {
	if s.runner == nil {
		return nil, fmt.Errorf("%w: litdb command not configured", domain.ErrSubprocess)
	}
	if n <= 0 {
		n = defaultLimit
	}
	return s.runner.Similar(ctx, source, n)
}

// Ask runs a retrieval-augmented language-model query via the litdb
// subprocess and returns the raw response text. This is documented
// slow: it blocks until the model finishes.
func (s *SearchService) Ask(ctx context.Context, prompt string) (string, error) {
	if s.runner == nil {
		return "", fmt.Errorf("%w: litdb command not configured", domain.ErrSubprocess)
	}
	return s.runner.GPT(ctx, prompt)
}
