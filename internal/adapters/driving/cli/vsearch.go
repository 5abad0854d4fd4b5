package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	vsearchLimit int
	vsearchJSON  bool
)

var vsearchCmd = &cobra.Command{
	Use:   "vsearch [query]",
	Short: "Semantic search the literature database",
	Long: `Searches the database by meaning rather than keywords, delegating
to the litdb command-line tool's vector search.`,
	Args: cobra.ExactArgs(1),
	RunE: runVSearch,
}

func init() {
	vsearchCmd.Flags().IntVarP(&vsearchLimit, "limit", "n", 3, "maximum number of results")
	vsearchCmd.Flags().BoolVar(&vsearchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(vsearchCmd)
}

func runVSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if searchService == nil {
		return errors.New("search service not configured")
	}

	candidates, err := searchService.Semantic(cmd.Context(), args[0], vsearchLimit)
	if err != nil {
		return fmt.Errorf("vsearch failed: %w", err)
	}

	if vsearchJSON {
		return outputJSON(cmd, candidates)
	}
	outputCandidates(cmd, candidates)
	return nil
}
