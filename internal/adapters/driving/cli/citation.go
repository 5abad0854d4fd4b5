package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

var citationCmd = &cobra.Command{
	Use:   "citation [source]",
	Short: "Print the citation for a source",
	Args:  cobra.ExactArgs(1),
	RunE:  runCitation,
}

var bibtexCmd = &cobra.Command{
	Use:   "bibtex [source]",
	Short: "Print the BibTeX entry for a source",
	Args:  cobra.ExactArgs(1),
	RunE:  runBibtex,
}

func init() {
	rootCmd.AddCommand(citationCmd)
	rootCmd.AddCommand(bibtexCmd)
}

func runCitation(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if recordService == nil {
		return errors.New("record service not configured")
	}

	citation, err := recordService.Citation(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("citation lookup failed: %w", err)
	}
	if citation == nil {
		return fmt.Errorf("%w: no citation recorded for %s", domain.ErrNotFound, args[0])
	}

	cmd.Println(*citation)
	return nil
}

func runBibtex(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if recordService == nil {
		return errors.New("record service not configured")
	}

	bibtex, err := recordService.Bibtex(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("bibtex lookup failed: %w", err)
	}
	if bibtex == nil {
		return fmt.Errorf("%w: no bibtex entry recorded for %s", domain.ErrNotFound, args[0])
	}

	cmd.Println(*bibtex)
	return nil
}
