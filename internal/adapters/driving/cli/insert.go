package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calder-labs/litorg-cli/internal/adapters/driving/tui/picker"
	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

var insertJSON bool

var insertCmd = &cobra.Command{
	Use:   "insert [file] [offset] [identifier]",
	Short: "Insert a litdb link at a byte offset",
	Long: `Splices an identifier into the document at the given offset and
rewrites the file in place. What gets inserted depends on where the
cursor sits: inside or just after an existing link the identifier is
appended to its list, after a bare litdb: marker it seeds the list,
anywhere else a complete new link is inserted.

When the identifier is omitted and stdin is a terminal, an
interactive picker over the database candidates opens instead.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runInsert,
}

func init() {
	insertCmd.Flags().BoolVar(&insertJSON, "json", false, "print the insertion result as JSON")
	rootCmd.AddCommand(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if insertService == nil {
		return errors.New("insert service not configured")
	}

	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: offset %q is not a number", domain.ErrInvalidInput, args[1])
	}

	identifier := ""
	if len(args) == 3 {
		identifier = args[2]
	} else {
		identifier, err = pickIdentifier(cmd)
		if err != nil {
			return err
		}
		if identifier == "" {
			// Picker dismissed.
			return nil
		}
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	result, err := insertService.Insert(cmd.Context(), string(content), offset, identifier)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}

	if err := os.WriteFile(args[0], []byte(result.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", args[0], err)
	}

	if insertJSON {
		return outputJSON(cmd, map[string]any{
			"point":    result.Point,
			"inserted": result.Inserted,
			"context":  result.Context.String(),
		})
	}
	cmd.Printf("Inserted %q, point now %d\n", result.Inserted, result.Point)
	return nil
}

// pickIdentifier runs the interactive candidate picker. It requires a
// terminal; in scripts the identifier argument is mandatory.
func pickIdentifier(cmd *cobra.Command) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%w: identifier required when not running interactively", domain.ErrInvalidInput)
	}
	if candidateService == nil {
		return "", errors.New("candidate service not configured")
	}

	candidates, err := candidateService.Candidates(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("loading candidates: %w", err)
	}

	chosen, err := picker.Run(candidates)
	if err != nil {
		return "", err
	}
	if chosen == nil {
		return "", nil
	}
	return chosen.Source, nil
}
