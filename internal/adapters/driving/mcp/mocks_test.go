package mcp

import (
	"context"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

func strptr(s string) *string { return &s }

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	hits       []domain.FulltextHit
	candidates []domain.Candidate
	answer     string
	err        error
}

func (m *mockSearchService) Fulltext(_ context.Context, _ string, _ int) ([]domain.FulltextHit, error) {
	return m.hits, m.err
}

func (m *mockSearchService) Semantic(_ context.Context, _ string, _ int) ([]domain.Candidate, error) {
	return m.candidates, m.err
}

func (m *mockSearchService) Similar(_ context.Context, _ string, _ int) ([]domain.Candidate, error) {
	return m.candidates, m.err
}

func (m *mockSearchService) Ask(_ context.Context, _ string) (string, error) {
	return m.answer, m.err
}

// mockAnnotateService is a mock implementation of driving.AnnotateService.
type mockAnnotateService struct {
	buffer *domain.Buffer
	err    error
}

func (m *mockAnnotateService) AnnotateBuffer(_ context.Context, content string) (*domain.Buffer, error) {
	if m.buffer != nil {
		return m.buffer, m.err
	}
	return &domain.Buffer{Text: content}, m.err
}

func (m *mockAnnotateService) AnnotateOccurrence(
	_ context.Context, _ *domain.Buffer, _, _ int, _ string, _ bool,
) error {
	return m.err
}

// mockInsertService is a mock implementation of driving.InsertService.
type mockInsertService struct {
	result *domain.Insertion
	err    error
}

func (m *mockInsertService) Insert(_ context.Context, _ string, _ int, _ string) (*domain.Insertion, error) {
	return m.result, m.err
}

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	result *domain.ExportResult
	err    error
}

func (m *mockExportService) Export(
	_ context.Context, _ []byte, _ string, _ domain.ExportFormat,
) (*domain.ExportResult, error) {
	return m.result, m.err
}

// mockCandidateService is a mock implementation of driving.CandidateService.
type mockCandidateService struct {
	candidates  []domain.Candidate
	invalidated int
	err         error
}

func (m *mockCandidateService) Candidates(_ context.Context) ([]domain.Candidate, error) {
	return m.candidates, m.err
}

func (m *mockCandidateService) Invalidate() {
	m.invalidated++
}

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	citation *string
	bibtex   *string
	err      error
}

func (m *mockRecordService) Citation(_ context.Context, _ string) (*string, error) {
	return m.citation, m.err
}

func (m *mockRecordService) Bibtex(_ context.Context, _ string) (*string, error) {
	return m.bibtex, m.err
}

// validPorts returns a Ports with every required service mocked.
func validPorts() *Ports {
	return &Ports{
		Search:   &mockSearchService{},
		Annotate: &mockAnnotateService{},
		Insert:   &mockInsertService{},
		Export:   &mockExportService{},
	}
}
