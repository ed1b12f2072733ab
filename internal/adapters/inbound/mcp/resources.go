package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all archscore MCP resources on the given server.
func registerResources(s *server.MCPServer, deps Deps) {
	// 1. archscore://catalog - the loaded catalog
	s.AddResource(
		mcplib.NewResource(
			"archscore://catalog",
			"Architecture Catalog",
			mcplib.WithResourceDescription("The architecture catalog currently used for scoring"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(deps),
	)

	// 2. archscore://config - effective scoring configuration
	s.AddResource(
		mcplib.NewResource(
			"archscore://config",
			"Scoring Configuration",
			mcplib.WithResourceDescription("Effective weights, thresholds and limits"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(deps),
	)
}

func handleCatalogResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cat, err := deps.Engine.Catalog()
		if err != nil {
			return nil, err
		}
		return jsonContents("archscore://catalog", cat)
	}
}

func handleConfigResource(deps Deps) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents("archscore://config", deps.Engine.Config())
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
