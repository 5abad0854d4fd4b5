package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for litorg resources.
	uriScheme = "litorg://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full candidate list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "candidates",
		Name:        "candidates",
		Description: "Every database entry as an insertion candidate",
		MIMEType:    "application/json",
	}, s.handleCandidatesResource)

	// Template for a source's citation.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{source}/citation",
		Name:        "source-citation",
		Description: "The formatted citation for a database source",
		MIMEType:    "text/plain",
	}, s.handleCitationResource)

	// Template for a source's BibTeX entry.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sources/{source}/bibtex",
		Name:        "source-bibtex",
		Description: "The BibTeX entry for a database source",
		MIMEType:    "text/plain",
	}, s.handleBibtexResource)
}

// handleCandidatesResource returns the candidate list as JSON.
func (s *Server) handleCandidatesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Candidates == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	candidates, err := s.ports.Candidates.Candidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	data, err := json.MarshalIndent(candidatesOutput(candidates).Candidates, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling candidates: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleCitationResource returns the citation for one source.
func (s *Server) handleCitationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Records == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	source := extractSource(req.Params.URI, "/citation")
	if source == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	citation, err := s.ports.Records.Citation(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("resolving citation: %w", err)
	}
	if citation == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     *citation,
		}},
	}, nil
}

// handleBibtexResource returns the BibTeX entry for one source.
func (s *Server) handleBibtexResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Records == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	source := extractSource(req.Params.URI, "/bibtex")
	if source == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	bibtex, err := s.ports.Records.Bibtex(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("resolving bibtex: %w", err)
	}
	if bibtex == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     *bibtex,
		}},
	}, nil
}

// extractSource extracts the source from a URI like
// litorg://sources/{source}/citation.
func extractSource(uri, suffix string) string {
	const prefix = uriScheme + "sources/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
