package cli

import (
	"context"
	"errors"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

func strptr(s string) *string { return &s }

// setupTestServices swaps all service variables for mocks and returns
// a cleanup restoring the originals.
func setupTestServices() func() {
	oldSearch := searchService
	oldAnnotate := annotateService
	oldInsert := insertService
	oldExport := exportService
	oldCandidates := candidateService
	oldRecords := recordService
	oldParser := docParser

	searchService = &mockSearchService{
		hits: []domain.FulltextHit{
			{Source: "https://doi.org/10.1/a", Snippet: "a *polymer* study"},
		},
		candidates: []domain.Candidate{
			{Citation: strptr("Author A (2024)"), Source: "srcA"},
		},
		answer: "a model answer",
	}
	annotateService = &mockAnnotateService{}
	insertService = &mockInsertService{
		result: &domain.Insertion{
			Content:  "see litdb:a,b done",
			Point:    13,
			Inserted: ",b",
			Context:  domain.CursorInsideOccurrence,
		},
	}
	exportService = &mockExportService{
		result: &domain.ExportResult{Entries: 1},
	}
	candidateService = &mockCandidateService{
		candidates: []domain.Candidate{
			{Citation: strptr("Author A (2024)"), Source: "srcA"},
		},
	}
	recordService = &mockRecordService{
		citation: strptr("Author A (2024)"),
		bibtex:   strptr("@article{a24,}"),
	}
	docParser = &mockDocParser{}

	return func() {
		searchService = oldSearch
		annotateService = oldAnnotate
		insertService = oldInsert
		exportService = oldExport
		candidateService = oldCandidates
		recordService = oldRecords
		docParser = oldParser
	}
}

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

// mockSearchServiceError fails every call.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Fulltext(_ context.Context, _ string, _ int) ([]domain.FulltextHit, error) {
	return nil, errors.New("store gone")
}

func (m *mockSearchServiceError) Semantic(_ context.Context, _ string, _ int) ([]domain.Candidate, error) {
	return nil, errors.New("litdb gone")
}

func (m *mockSearchServiceError) Similar(_ context.Context, _ string, _ int) ([]domain.Candidate, error) {
	return nil, errors.New("litdb gone")
}

func (m *mockSearchServiceError) Ask(_ context.Context, _ string) (string, error) {
	return "", errors.New("litdb gone")
}

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

type mockInsertService struct {
	result *domain.Insertion
	err    error
}

func (m *mockInsertService) Insert(_ context.Context, _ string, _ int, _ string) (*domain.Insertion, error) {
	return m.result, m.err
}

type mockExportService struct {
	result *domain.ExportResult
	err    error
}

func (m *mockExportService) Export(
	_ context.Context, _ []byte, _ string, _ domain.ExportFormat,
) (*domain.ExportResult, error) {
	return m.result, m.err
}

type mockCandidateService struct {
	candidates []domain.Candidate
	err        error
}

func (m *mockCandidateService) Candidates(_ context.Context) ([]domain.Candidate, error) {
	return m.candidates, m.err
}

func (m *mockCandidateService) Invalidate() {}

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

type mockDocParser struct {
	links []domain.LinkNode
	err   error
}

func (m *mockDocParser) Links(_ []byte) ([]domain.LinkNode, error) {
	return m.links, m.err
}
