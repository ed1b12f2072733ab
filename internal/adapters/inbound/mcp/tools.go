package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

// registerTools registers all archscore MCP tools on the given server.
func registerTools(s *server.MCPServer, deps Deps) {
	// 1. archscore_score
	s.AddTool(
		mcplib.NewTool("archscore_score",
			mcplib.WithDescription("Score an application context against the loaded architecture catalog and return ranked recommendations, exclusions and clarification questions as JSON"),
			mcplib.WithString("context_path",
				mcplib.Required(),
				mcplib.Description("Path to the application context JSON document"),
			),
			mcplib.WithString("answers",
				mcplib.Description(`Clarification answers as a JSON object, e.g. {"cost_priority":"balanced"}`),
			),
			mcplib.WithNumber("max_recommendations",
				mcplib.Description("Maximum recommendations to return (default from configuration)"),
			),
		),
		handleScore(deps),
	)

	// 2. archscore_questions
	s.AddTool(
		mcplib.NewTool("archscore_questions",
			mcplib.WithDescription("Return the clarification questions for an application context without scoring it"),
			mcplib.WithString("context_path",
				mcplib.Required(),
				mcplib.Description("Path to the application context JSON document"),
			),
		),
		handleQuestions(deps),
	)

	// 3. archscore_load_catalog
	s.AddTool(
		mcplib.NewTool("archscore_load_catalog",
			mcplib.WithDescription("Load an architecture catalog and make it the catalog used for scoring"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path to the catalog JSON or YAML document"),
			),
		),
		handleLoadCatalog(deps),
	)

	// 4. archscore_validate
	s.AddTool(
		mcplib.NewTool("archscore_validate",
			mcplib.WithDescription("Validate a catalog or application context document and report issues"),
			mcplib.WithString("path", mcplib.Required(), mcplib.Description("Path to the document")),
			mcplib.WithString("kind", mcplib.Description("Document kind: catalog or context (default: context)")),
		),
		handleValidate(deps),
	)
}

func handleScore(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		contextPath, err := request.RequireString("context_path")
		if err != nil {
			return errorResult("context_path parameter is required"), nil
		}
		args := request.GetArguments()

		answers, err := parseAnswers(args["answers"])
		if err != nil {
			return errorResult(err.Error()), nil
		}
		limit := 0
		if n, ok := args["max_recommendations"].(float64); ok {
			limit = int(n)
		}

		res, err := deps.Engine.Score(contextPath, answers, limit)
		if err != nil {
			deps.Logger.Warn("score tool failed", zap.String("context", contextPath), zap.Error(err))
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

func handleQuestions(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		contextPath, err := request.RequireString("context_path")
		if err != nil {
			return errorResult("context_path parameter is required"), nil
		}
		qs, err := deps.Engine.Questions(contextPath)
		if err != nil {
			return errorResult(fmt.Sprintf("deriving questions failed: %v", err)), nil
		}
		if len(qs) == 0 {
			return textResult("No clarification questions: every intent dimension is known with sufficient confidence."), nil
		}
		return jsonResult(qs)
	}
}

func handleLoadCatalog(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult("path parameter is required"), nil
		}
		cat, err := deps.Engine.LoadCatalog(path)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return textResult(fmt.Sprintf("Loaded catalog %s with %d architectures.", cat.Version, len(cat.Architectures))), nil
	}
}

func handleValidate(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult("path parameter is required"), nil
		}
		kind, _ := request.GetArguments()["kind"].(string)

		switch kind {
		case "catalog":
			report, err := deps.Validator.ValidateCatalog(path)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			return jsonResult(report)
		case "", "context":
			report, err := deps.Validator.ValidateContext(path)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			return jsonResult(report)
		default:
			return errorResult(fmt.Sprintf("unknown kind %q (valid: catalog, context)", kind)), nil
		}
	}
}

// parseAnswers accepts answers as a JSON object string or an object argument.
func parseAnswers(v any) (map[string]string, error) {
	switch a := v.(type) {
	case nil:
		return nil, nil
	case string:
		if a == "" {
			return nil, nil
		}
		var out map[string]string
		if err := json.Unmarshal([]byte(a), &out); err != nil {
			return nil, fmt.Errorf("answers must be a JSON object of strings: %v", err)
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(a))
		for k, val := range a {
			s, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("answer %q must be a string", k)
			}
			out[k] = s
		}
		return out, nil
	}
	return nil, fmt.Errorf("answers must be a JSON object")
}

// jsonResult marshals v as indented JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
