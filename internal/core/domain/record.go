package domain

// Field names addressable inside a record's extra payload.
// These become JSON paths ($.citation etc.) in the store adapter.
const (
	FieldCitation = "citation"
	FieldBibtex   = "bibtex"
)

// Candidate is a (citation, source) pair offered to the user when
// inserting a new reference. Citation may be nil when the record
// carries no citation string.
type Candidate struct {
	Citation *string
	Source   string
}

// Display returns the citation string, falling back to the source
// identifier when no citation is available.
func (c Candidate) Display() string {
	if c.Citation != nil && *c.Citation != "" {
		return *c.Citation
	}
	return c.Source
}

// FulltextHit is one ranked result from a full-text query.
type FulltextHit struct {
	// Source is the matched record's identifier.
	Source string

	// Snippet is the highlighted match context.
	Snippet string
}
