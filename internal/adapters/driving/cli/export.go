package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

var (
	exportOutput string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a document's bibliography",
	Long: `Collects every litdb link in the document, in document order, and
writes the referenced BibTeX entries to the output file. Entries
missing from the database leave a blank slot and are reported on
stderr, as are duplicate citation keys.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: input with .bib extension)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "bibtex", "bibliography format")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if exportService == nil {
		return errors.New("export service not configured")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	dest := exportOutput
	if dest == "" {
		dest = strings.TrimSuffix(args[0], ".org") + ".bib"
	}

	result, err := exportService.Export(cmd.Context(), content, dest, domain.ExportFormat(exportFormat))
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s (%s)\n", d.Kind, d.Identifier, d.Detail)
	}
	cmd.Printf("Wrote %d entries to %s\n", result.Entries, dest)
	return nil
}
