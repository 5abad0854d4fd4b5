// Package cli implements the litorg command-line interface using cobra.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/calder-labs/litorg-cli/internal/adapters/driven/config/file"
	"github.com/calder-labs/litorg-cli/internal/adapters/driven/litdb"
	"github.com/calder-labs/litorg-cli/internal/adapters/driven/orgparse"
	"github.com/calder-labs/litorg-cli/internal/adapters/driven/storage/sqlite"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driven"
	"github.com/calder-labs/litorg-cli/internal/core/ports/driving"
	"github.com/calder-labs/litorg-cli/internal/core/services"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
	flagDBPath    string
)

// Services commands depend on. Wired lazily by ensureServices so that
// tests can substitute mocks before Execute runs.
var (
	searchService    driving.SearchService
	annotateService  driving.AnnotateService
	insertService    driving.InsertService
	exportService    driving.ExportService
	candidateService driving.CandidateService
	recordService    driving.RecordService
)

// databasePath is the resolved litdb database location, kept for the
// mcp serve watcher.
var databasePath string

// docParser is exposed for commands that drive annotation occurrence
// by occurrence, such as strict mode.
var docParser driven.DocumentParser

var rootCmd = &cobra.Command{
	Use:   "litorg",
	Short: "Org-mode tooling for a litdb literature database",
	Long: `litorg connects Org documents to a local litdb literature database.

It annotates litdb: links with citations, inserts new links at point,
exports bibliographies, and searches the database by keyword or
semantically via the litdb command-line tool.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.litorg)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "litdb database path (overrides config)")
}

// ensureServices wires the real adapters behind the service
// variables. It is a no-op when services are already present, which
// is how tests inject mocks.
func ensureServices() error {
	if searchService != nil {
		return nil
	}

	cfg, err := configfile.NewConfigStore(flagConfigDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.GetString("database.path")
	}
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".litorg", "litdb.db")
	}

	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return err
	}
	databasePath = dbPath
	logger.Debug("using database %s", dbPath)

	runner := litdb.NewRunner(cfg.GetString("litdb.command"), filepath.Dir(dbPath))
	parser := orgparse.NewParser()
	docParser = parser

	searchService = services.NewSearchService(store, runner)
	annotateService = services.NewAnnotateService(store, parser)
	insertService = services.NewInsertService(annotateService)
	exportService = services.NewExportService(store, parser)
	candidateService = services.NewCandidateCache(store, services.SystemClock{})
	recordService = services.NewRecordService(store)

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}
