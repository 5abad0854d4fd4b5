package driven

import "github.com/calder-labs/litorg-cli/internal/core/domain"

// DocumentParser locates litdb links in a structured-text document.
// Links are returned in document order with the byte bounds of each
// link's identifier-list text. The capability is parser-agnostic:
// any implementation that can walk the document and read link targets
// satisfies it.
type DocumentParser interface {
	Links(content []byte) ([]domain.LinkNode, error)
}
