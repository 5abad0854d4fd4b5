package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	similarLimit int
	similarJSON  bool
)

var similarCmd = &cobra.Command{
	Use:   "similar [source]",
	Short: "Find entries related to an existing source",
	Long: `Lists database entries most similar to the given source identifier,
delegating to the litdb command-line tool.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().IntVarP(&similarLimit, "limit", "n", 3, "maximum number of results")
	similarCmd.Flags().BoolVar(&similarJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(similarCmd)
}

func runSimilar(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if searchService == nil {
		return errors.New("search service not configured")
	}

	candidates, err := searchService.Similar(cmd.Context(), args[0], similarLimit)
	if err != nil {
		return fmt.Errorf("similar failed: %w", err)
	}

	if similarJSON {
		return outputJSON(cmd, candidates)
	}
	outputCandidates(cmd, candidates)
	return nil
}
