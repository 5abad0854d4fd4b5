package litdb

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// Ensure Runner implements the interface.
var _ driven.LitdbRunner = (*Runner)(nil)

// Runner shells out to the litdb CLI. Calls block until the
// subprocess exits; semantic and model-backed subcommands can take
// seconds to minutes, which is acceptable in a single-user
// interactive tool. Only context cancellation interrupts them.
type Runner struct {
	command string
	dir     string
}

// NewRunner creates a runner invoking command with the working
// directory set to dir (the directory containing the litdb database,
// which is where litdb expects to find its configuration).
func NewRunner(command, dir string) *Runner {
	if command == "" {
		command = "litdb"
	}
	return &Runner{
		command: command,
		dir:     dir,
	}
}

// Similar returns candidates related to an existing source.
func (r *Runner) Similar(ctx context.Context, source string, n int) ([]domain.Candidate, error) {
	out, err := r.run(ctx, "similar", "-n", strconv.Itoa(n), "-e", source)
	if err != nil {
		return nil, err
	}
	return r.parsePairs("similar", out)
}

// VSearch returns candidates for a free-text semantic query.
func (r *Runner) VSearch(ctx context.Context, query string, n int) ([]domain.Candidate, error) {
	out, err := r.run(ctx, "vsearch", "-n", strconv.Itoa(n), "-e", query)
	if err != nil {
		return nil, err
	}
	return r.parsePairs("vsearch", out)
}

// GPT runs a retrieval-augmented model query and returns the raw
// response text.
func (r *Runner) GPT(ctx context.Context, prompt string) (string, error) {
	out, err := r.run(ctx, "gpt", prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

// run executes one litdb subcommand and captures stdout.
func (r *Runner) run(ctx context.Context, subcommand string, args ...string) (string, error) {
	cmdArgs := append([]string{subcommand}, args...)
	logger.Debug("running %s %s", r.command, strings.Join(cmdArgs, " "))

	cmd := exec.CommandContext(ctx, r.command, cmdArgs...)
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: %s %s: %s", domain.ErrSubprocess, r.command, subcommand, detail)
	}

	return stdout.String(), nil
}

// parsePairs parses tab-separated (citation, source) lines. Blank
// lines are ignored; anything else that does not split into two
// fields is a protocol violation.
func (r *Runner) parsePairs(subcommand, out string) ([]domain.Candidate, error) {
	var candidates []domain.Candidate
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		citation, source, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%w: %s %s: unparsable line %q",
				domain.ErrSubprocess, r.command, subcommand, line)
		}

		c := domain.Candidate{Source: strings.TrimSpace(source)}
		if citation = strings.TrimSpace(citation); citation != "" {
			c.Citation = &citation
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
