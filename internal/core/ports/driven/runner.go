package driven

import (
	"context"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

// LitdbRunner invokes the external litdb command-line tool.
// Calls block until the subprocess exits; they can take seconds to
// minutes and honour only context cancellation, no timeouts.
// Failures are reported as domain.ErrSubprocess with the offending
// subcommand in the wrapped message.
type LitdbRunner interface {
	// Similar returns candidates related to an existing source.
	Similar(ctx context.Context, source string, n int) ([]domain.Candidate, error)

	// VSearch returns candidates for a free-text semantic query.
	VSearch(ctx context.Context, query string, n int) ([]domain.Candidate, error)

	// GPT runs a retrieval-augmented language-model query and returns
	// the raw response text.
	GPT(ctx context.Context, prompt string) (string, error)
}
