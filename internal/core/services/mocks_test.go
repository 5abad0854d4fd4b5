package services

import (
	"context"
	"time"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

// --- Mock implementations shared across service tests ---

// mockRecordStore implements driven.RecordStore for testing.
type mockRecordStore struct {
	// records maps source -> field -> value.
	records map[string]map[string]*string

	list      []domain.Candidate
	listCalls int

	hits []domain.FulltextHit

	mtime     time.Time
	mtimeErr  error
	lookupErr error
}

func (m *mockRecordStore) Lookup(_ context.Context, field, source string) (*string, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	fields, ok := m.records[source]
	if !ok {
		return nil, nil
	}
	return fields[field], nil
}

func (m *mockRecordStore) ListAll(_ context.Context) ([]domain.Candidate, error) {
	m.listCalls++
	return m.list, nil
}

func (m *mockRecordStore) Fulltext(_ context.Context, _ string, limit int) ([]domain.FulltextHit, error) {
	if limit < len(m.hits) {
		return m.hits[:limit], nil
	}
	return m.hits, nil
}

func (m *mockRecordStore) ModTime() (time.Time, error) {
	return m.mtime, m.mtimeErr
}

func (m *mockRecordStore) Close() error { return nil }

// mockParser implements driven.DocumentParser for testing.
type mockParser struct {
	links []domain.LinkNode
	err   error
}

func (m *mockParser) Links(_ []byte) ([]domain.LinkNode, error) {
	return m.links, m.err
}

// mockClock implements driven.Clock with a settable time.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time { return m.now }

// mockRunner implements driven.LitdbRunner for testing.
type mockRunner struct {
	candidates []domain.Candidate
	response   string
	err        error

	lastSubcommand string
	lastArg        string
	lastN          int
}

func (m *mockRunner) Similar(_ context.Context, source string, n int) ([]domain.Candidate, error) {
	m.lastSubcommand, m.lastArg, m.lastN = "similar", source, n
	return m.candidates, m.err
}

func (m *mockRunner) VSearch(_ context.Context, query string, n int) ([]domain.Candidate, error) {
	m.lastSubcommand, m.lastArg, m.lastN = "vsearch", query, n
	return m.candidates, m.err
}

func (m *mockRunner) GPT(_ context.Context, prompt string) (string, error) {
	m.lastSubcommand, m.lastArg = "gpt", prompt
	return m.response, m.err
}

func strptr(s string) *string { return &s }

// storeWith builds a mock store mapping sources to citation/bibtex.
func storeWith(entries map[string][2]*string) *mockRecordStore {
	records := make(map[string]map[string]*string, len(entries))
	for source, pair := range entries {
		records[source] = map[string]*string{
			domain.FieldCitation: pair[0],
			domain.FieldBibtex:   pair[1],
		}
	}
	return &mockRecordStore{records: records}
}
