package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calder-labs/litorg-cli/internal/adapters/driven/watch"
	"github.com/calder-labs/litorg-cli/internal/adapters/driving/mcp"
	"github.com/calder-labs/litorg-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the literature
database to editors and AI assistants.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default)
  litorg mcp serve

  # HTTP mode
  litorg mcp serve --port 8080`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}

	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:     searchService,
		Annotate:   annotateService,
		Insert:     insertService,
		Export:     exportService,
		Candidates: candidateService,
		Records:    recordService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	// The server holds its candidate cache for as long as it runs, so
	// drop it whenever the database file changes underneath us.
	if candidateService != nil && databasePath != "" {
		w, err := watch.New(databasePath, candidateService.Invalidate)
		if err != nil {
			logger.Warn("database watch unavailable: %v", err)
		} else {
			defer w.Close()
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
