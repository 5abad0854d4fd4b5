package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/calder-labs/litorg-cli/internal/core/domain"
)

var annotateStrict bool

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Resolve litdb link annotations in a document",
	Long: `Scans an Org document for litdb links and prints one annotation per
identifier as JSON: the identifier's span, its key, and the citation
tooltip resolved from the database.

Identifiers whose literal text cannot be located in the link are
skipped with a warning; with --strict they fail the whole run.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

var tooltipCmd = &cobra.Command{
	Use:   "tooltip [file] [offset]",
	Short: "Print the citation tooltip at a byte offset",
	Args:  cobra.ExactArgs(2),
	RunE:  runTooltip,
}

func init() {
	annotateCmd.Flags().BoolVar(&annotateStrict, "strict", false, "fail on identifiers missing from their span")
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(tooltipCmd)
}

// annotation is the CLI's JSON shape for one resolved identifier.
type annotation struct {
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Key     string  `json:"key"`
	Tooltip *string `json:"tooltip"`
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if annotateService == nil {
		return errors.New("annotate service not configured")
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	b, err := annotateBuffer(cmd, string(content), annotateStrict)
	if err != nil {
		return err
	}

	annotations := make([]annotation, 0)
	for _, occ := range b.Occurrences {
		for _, a := range occ.Annotations {
			annotations = append(annotations, annotation{
				Start:   a.Start,
				End:     a.End,
				Key:     a.Key,
				Tooltip: a.Tooltip,
			})
		}
	}
	return outputJSON(cmd, annotations)
}

func runTooltip(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if annotateService == nil {
		return errors.New("annotate service not configured")
	}

	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: offset %q is not a number", domain.ErrInvalidInput, args[1])
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	b, err := annotateService.AnnotateBuffer(cmd.Context(), string(content))
	if err != nil {
		return err
	}

	tooltip := b.TooltipAt(offset)
	if tooltip == nil {
		cmd.Println("No annotation at offset.")
		return nil
	}
	cmd.Println(*tooltip)
	return nil
}

// annotateBuffer annotates content, honoring strict mode by driving
// the occurrences individually.
func annotateBuffer(cmd *cobra.Command, content string, strict bool) (*domain.Buffer, error) {
	if !strict {
		return annotateService.AnnotateBuffer(cmd.Context(), content)
	}

	if docParser == nil {
		return nil, errors.New("document parser not configured")
	}
	links, err := docParser.Links([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	b := &domain.Buffer{Text: content}
	for _, ln := range links {
		if err := annotateService.AnnotateOccurrence(cmd.Context(), b, ln.TargetStart, ln.TargetEnd, ln.Target, true); err != nil {
			return nil, err
		}
	}
	return b, nil
}
