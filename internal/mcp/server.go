// ABOUTME: MCP server setup for the fitness tracker.
// ABOUTME: Wraps the MCP server around a shared Session.
package mcp

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with session access.
type Server struct {
	mcpServer *mcp.Server
	session   *session.Session
	log       *log.Logger
}

// NewServer creates a new MCP server over the given session.
func NewServer(sess *session.Session, logger *log.Logger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fittrack",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		session:   sess,
		log:       logger,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	if s.log != nil {
		s.log.Info("mcp server starting", "transport", "stdio")
	}
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
