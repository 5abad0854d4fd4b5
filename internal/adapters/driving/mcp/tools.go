package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

// SearchInput is the input schema for the search tools.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 3)"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []FulltextHitOutput `json:"results"`
	Count   int                 `json:"count"`
}

// FulltextHitOutput represents a single full-text search result.
type FulltextHitOutput struct {
	Source  string `json:"source"`
	Snippet string `json:"snippet,omitempty"`
}

// CandidateOutput represents one database entry as a candidate.
type CandidateOutput struct {
	Source   string `json:"source"`
	Citation string `json:"citation,omitempty"`
}

// CandidatesOutput is the output schema for candidate-producing tools.
type CandidatesOutput struct {
	Candidates []CandidateOutput `json:"candidates"`
	Count      int               `json:"count"`
}

// AnnotateInput is the input schema for the annotate tool.
type AnnotateInput struct {
	Content string `json:"content" jsonschema:"the Org document text to annotate"`
}

// AnnotationOutput represents one resolved identifier annotation.
type AnnotationOutput struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Key     string `json:"key"`
	Tooltip string `json:"tooltip,omitempty"`
}

// AnnotateOutput is the output schema for the annotate tool.
type AnnotateOutput struct {
	Annotations []AnnotationOutput `json:"annotations"`
	Count       int                `json:"count"`
}

// InsertLinkInput is the input schema for the insert_link tool.
type InsertLinkInput struct {
	Content    string `json:"content" jsonschema:"the document text"`
	Point      int    `json:"point" jsonschema:"byte offset of the cursor"`
	Identifier string `json:"identifier" jsonschema:"the database source identifier to insert"`
}

// InsertLinkOutput is the output schema for the insert_link tool.
type InsertLinkOutput struct {
	Content string `json:"content"`
	Point   int    `json:"point"`
	Context string `json:"context"`
}

// ExportInput is the input schema for the export_bibliography tool.
type ExportInput struct {
	Content     string `json:"content" jsonschema:"the Org document text"`
	Destination string `json:"destination" jsonschema:"path of the bibliography file to write"`
	Format      string `json:"format,omitempty" jsonschema:"bibliography format (default bibtex)"`
}

// DiagnosticOutput represents one export diagnostic.
type DiagnosticOutput struct {
	Kind       string `json:"kind"`
	Identifier string `json:"identifier"`
	Detail     string `json:"detail,omitempty"`
}

// ExportOutput is the output schema for the export_bibliography tool.
type ExportOutput struct {
	Entries     int                `json:"entries"`
	Diagnostics []DiagnosticOutput `json:"diagnostics,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Full-text search the literature database",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "vsearch",
		Description: "Semantic search the literature database",
	}, s.handleVSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate",
		Description: "Resolve litdb link annotations in Org document text",
	}, s.handleAnnotate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "insert_link",
		Description: "Insert a litdb link identifier at a cursor position",
	}, s.handleInsertLink)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export_bibliography",
		Description: "Export a document's bibliography to a file",
	}, s.handleExport)

	if s.ports.Candidates != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "candidates",
			Description: "List every database entry as an insertion candidate",
		}, s.handleCandidates)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 3
	}

	hits, err := s.ports.Search.Fulltext(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]FulltextHitOutput, len(hits)),
		Count:   len(hits),
	}
	for i := range hits {
		output.Results[i] = FulltextHitOutput{
			Source:  hits[i].Source,
			Snippet: hits[i].Snippet,
		}
	}

	return nil, output, nil
}

// handleVSearch handles the vsearch tool invocation.
func (s *Server) handleVSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, CandidatesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 3
	}

	candidates, err := s.ports.Search.Semantic(ctx, input.Query, limit)
	if err != nil {
		return nil, CandidatesOutput{}, err
	}

	return nil, candidatesOutput(candidates), nil
}

// handleAnnotate handles the annotate tool invocation.
func (s *Server) handleAnnotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, AnnotateOutput, error) {
	b, err := s.ports.Annotate.AnnotateBuffer(ctx, input.Content)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	output := AnnotateOutput{Annotations: make([]AnnotationOutput, 0)}
	for _, occ := range b.Occurrences {
		for _, a := range occ.Annotations {
			out := AnnotationOutput{
				Start: a.Start,
				End:   a.End,
				Key:   a.Key,
			}
			if a.Tooltip != nil {
				out.Tooltip = *a.Tooltip
			}
			output.Annotations = append(output.Annotations, out)
		}
	}
	output.Count = len(output.Annotations)

	return nil, output, nil
}

// handleInsertLink handles the insert_link tool invocation.
func (s *Server) handleInsertLink(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertLinkInput,
) (*mcp.CallToolResult, InsertLinkOutput, error) {
	result, err := s.ports.Insert.Insert(ctx, input.Content, input.Point, input.Identifier)
	if err != nil {
		return nil, InsertLinkOutput{}, err
	}

	return nil, InsertLinkOutput{
		Content: result.Content,
		Point:   result.Point,
		Context: result.Context.String(),
	}, nil
}

// handleExport handles the export_bibliography tool invocation.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	format := domain.ExportFormat(input.Format)
	if input.Format == "" {
		format = domain.FormatBibtex
	}

	result, err := s.ports.Export.Export(ctx, []byte(input.Content), input.Destination, format)
	if err != nil {
		return nil, ExportOutput{}, err
	}

	output := ExportOutput{Entries: result.Entries}
	for _, d := range result.Diagnostics {
		output.Diagnostics = append(output.Diagnostics, DiagnosticOutput{
			Kind:       string(d.Kind),
			Identifier: d.Identifier,
			Detail:     d.Detail,
		})
	}

	return nil, output, nil
}

// handleCandidates handles the candidates tool invocation.
func (s *Server) handleCandidates(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CandidatesOutput, error) {
	candidates, err := s.ports.Candidates.Candidates(ctx)
	if err != nil {
		return nil, CandidatesOutput{}, err
	}

	return nil, candidatesOutput(candidates), nil
}

func candidatesOutput(candidates []domain.Candidate) CandidatesOutput {
	output := CandidatesOutput{
		Candidates: make([]CandidateOutput, len(candidates)),
		Count:      len(candidates),
	}
	for i := range candidates {
		output.Candidates[i] = CandidateOutput{Source: candidates[i].Source}
		if candidates[i].Citation != nil {
			output.Candidates[i].Citation = *candidates[i].Citation
		}
	}
	return output
}
