package services

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// bibtexKeyRe extracts the citation key from an entry head like
// "@article{key,".
var bibtexKeyRe = regexp.MustCompile(`^\s*@\w+\s*\{\s*([^,\s}]+)\s*,`)

// ExportService collects every litdb link in a document and writes the
// resolved bibliography entries to a destination file.
type ExportService struct {
	store  driven.RecordStore
	parser driven.DocumentParser
}

// NewExportService creates a new export service.
func NewExportService(store driven.RecordStore, parser driven.DocumentParser) *ExportService {
	return &ExportService{
		store:  store,
		parser: parser,
	}
}

// Export walks content, flattens the identifier lists of all litdb
// links in document order (duplicates preserved), resolves each
// identifier's bibtex entry and writes the entries newline-joined to
// dest, overwriting any existing file.
//
// A missing entry is not fatal: it is written as a blank and reported
// as a diagnostic. Duplicate citation keys are reported, never
// deduplicated. Only the bibtex format is supported; anything else
// fails with domain.ErrUnsupportedFormat.
func (s *ExportService) Export(
	ctx context.Context, content []byte, dest string, format domain.ExportFormat,
) (*domain.ExportResult, error) {
	if format != domain.FormatBibtex {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	logger.Section("Bibliography Export")

	links, err := s.parser.Links(content)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	var ids []string
	for _, ln := range links {
		ids = append(ids, domain.SplitTarget(ln.Target)...)
	}
	logger.Debug("Collected %d identifier(s) from %d link(s)", len(ids), len(links))

	result := &domain.ExportResult{}
	entries := make([]string, 0, len(ids))
	seenKeys := make(map[string]string) // citation key -> identifier that introduced it

	for _, id := range ids {
		entry, err := s.store.Lookup(ctx, domain.FieldBibtex, id)
		if err != nil {
			return nil, fmt.Errorf("resolving bibtex for %q: %w", id, err)
		}
		if entry == nil {
			entries = append(entries, "")
			result.Diagnostics = append(result.Diagnostics, domain.ExportDiagnostic{
				Kind:       domain.DiagnosticMissingEntry,
				Identifier: id,
				Detail:     "no bibtex entry in store",
			})
			continue
		}

		entries = append(entries, *entry)

		if key := citationKey(*entry); key != "" {
			if first, dup := seenKeys[key]; dup {
				result.Diagnostics = append(result.Diagnostics, domain.ExportDiagnostic{
					Kind:       domain.DiagnosticDuplicateKey,
					Identifier: id,
					Detail:     fmt.Sprintf("key %q already used by %s", key, first),
				})
			} else {
				seenKeys[key] = id
			}
		}
	}

	result.Entries = len(entries)

	out := strings.Join(entries, "\n")
	if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dest, err)
	}
	logger.Info("Wrote %d entries to %s", result.Entries, dest)

	return result, nil
}

// citationKey returns the citation key of a bibtex entry, or "" when
// the entry head does not parse.
func citationKey(entry string) string {
	m := bibtexKeyRe.FindStringSubmatch(entry)
	if m == nil {
		return ""
	}
	return m[1]
}
