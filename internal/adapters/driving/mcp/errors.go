// Package mcp provides an MCP (Model Context Protocol) server adapter
// for litorg. It exposes the literature database and link tooling to
// editors and AI assistants.
package mcp

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingAnnotateService is returned when the annotate service is not provided.
	ErrMissingAnnotateService = errors.New("mcp: annotate service is required")

	// ErrMissingInsertService is returned when the insert service is not provided.
	ErrMissingInsertService = errors.New("mcp: insert service is required")

	// ErrMissingExportService is returned when the export service is not provided.
	ErrMissingExportService = errors.New("mcp: export service is required")
)
