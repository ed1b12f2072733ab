package mcp

import (
	"github.com/archscore/archscore/internal/application"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// Deps are the services exposed over MCP.
type Deps struct {
	Engine    *application.ScoringEngine
	Validator *application.ValidateService
	Logger    *zap.Logger
}

// NewArchScoreMCPServer creates an MCP server with all archscore tools and
// resources registered. The engine should already hold a catalog; tools
// report a not-loaded error otherwise.
func NewArchScoreMCPServer(version string, deps Deps) *server.MCPServer {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := server.NewMCPServer(
		"archscore",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, deps)
	registerResources(s, deps)

	return s
}
