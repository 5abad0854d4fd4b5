package mcp

import (
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides full-text and semantic search.
	Search driving.SearchService

	// Annotate resolves link annotations in document text.
	Annotate driving.AnnotateService

	// Insert splices identifiers into document text.
	Insert driving.InsertService

	// Export writes bibliographies.
	Export driving.ExportService

	// Candidates provides the cached candidate list. Optional.
	Candidates driving.CandidateService

	// Records resolves individual record fields. Optional.
	Records driving.RecordService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Annotate == nil {
		return ErrMissingAnnotateService
	}
	if p.Insert == nil {
		return ErrMissingInsertService
	}
	if p.Export == nil {
		return ErrMissingExportService
	}
	// Candidates and Records are optional
	return nil
}
