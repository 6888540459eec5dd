// ABOUTME: MCP server exposing the measurement log over stdio.
// ABOUTME: Tools cover logging, trend analysis, and reference-data search.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sporhocam/sporhocam/internal/storage"
)

// serverVersion is reported to MCP clients during initialization.
const serverVersion = "1.0.0"

// Server exposes the tracker's measurements and seeded reference data
// (exercises, foods with Turkish aliases) through MCP tools and resources.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
}

// NewServer creates an MCP server over the given store. The store must
// already be seeded for the search tools to return anything useful.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sporhocam",
			Version: serverVersion,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
