// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server over the local database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to interact with your tracker data through a
standardized protocol. The server communicates via stdin/stdout.

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "sporhocam": {
        "command": "sporhocam",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_measurement     Record a measurement
  list_measurements   List recent measurements
  delete_measurement  Delete a measurement by ID
  get_trend           Trend analysis for a measurement type
  search_exercises    Search the seeded exercise database
  search_foods        Search the seeded food database
  get_latest          Most recent value per measurement type

AVAILABLE RESOURCES:

  sporhocam://recent    Recent measurements
  sporhocam://today     Today's measurements
  sporhocam://summary   Latest value per type, grouped`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
