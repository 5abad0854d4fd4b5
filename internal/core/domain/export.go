package domain

// ExportFormat names a bibliography export target format.
type ExportFormat string

// FormatBibtex is the only supported export format. Requests for any
// other format fail with ErrUnsupportedFormat.
const FormatBibtex ExportFormat = "bibtex"

// DiagnosticKind classifies an export diagnostic.
type DiagnosticKind string

const (
	// DiagnosticMissingEntry marks an identifier that resolved to no
	// bibtex entry. The export proceeds with a blank entry.
	DiagnosticMissingEntry DiagnosticKind = "missing-entry"

	// DiagnosticDuplicateKey marks a citation key that appears in more
	// than one resolved entry. Entries are never deduplicated.
	DiagnosticDuplicateKey DiagnosticKind = "duplicate-key"
)

// ExportDiagnostic is a non-fatal finding produced while exporting.
type ExportDiagnostic struct {
	Kind       DiagnosticKind `json:"kind"`
	Identifier string         `json:"identifier"`
	Detail     string         `json:"detail,omitempty"`
}

// ExportResult summarises one bibliography export.
type ExportResult struct {
	// Entries is the number of entries written, blanks included.
	Entries int `json:"entries"`

	// Diagnostics lists missing-entry and duplicate-key findings.
	Diagnostics []ExportDiagnostic `json:"diagnostics,omitempty"`
}

// Insertion is the outcome of splicing an identifier into a buffer.
type Insertion struct {
	// Content is the full text after the splice.
	Content string `json:"content"`

	// Point is the position just past the inserted fragment.
	Point int `json:"point"`

	// Inserted is the literal fragment that was spliced in.
	Inserted string `json:"inserted"`

	// Context is the cursor context the splice was dispatched on.
	Context CursorContext `json:"-"`
}
