package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var candidatesJSON bool

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List insertion candidates from the database",
	Long: `Prints every database entry as an insertion candidate. The list is
cached and regenerated only when the database file changes.`,
	Args: cobra.NoArgs,
	RunE: runCandidates,
}

func init() {
	candidatesCmd.Flags().BoolVar(&candidatesJSON, "json", false, "output candidates as JSON")
	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if candidateService == nil {
		return errors.New("candidate service not configured")
	}

	candidates, err := candidateService.Candidates(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing candidates failed: %w", err)
	}

	if candidatesJSON {
		return outputJSON(cmd, candidates)
	}
	outputCandidates(cmd, candidates)
	return nil
}
