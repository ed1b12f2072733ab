package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/archscore/archscore/internal/adapters/outbound/catalog"
	"github.com/archscore/archscore/internal/adapters/outbound/contextfile"
	"github.com/archscore/archscore/internal/application"
	"github.com/archscore/archscore/internal/domain"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	e2eCatalog    = "../../../../testdata/catalogs/e2e.json"
	springContext = "../../../../testdata/contexts/springboot-containerized.json"
	webContext    = "../../../../testdata/contexts/minimal-web.json"
)

func testDeps(t *testing.T, load bool) Deps {
	t.Helper()
	cfg := domain.DefaultScoringConfig()
	loader := catalog.New(cfg.MinCatalogVersion)
	reader := contextfile.New()
	engine := application.NewScoringEngine(cfg, loader, reader)
	if load {
		_, err := engine.LoadCatalog(e2eCatalog)
		require.NoError(t, err)
	}
	return Deps{Engine: engine, Validator: application.NewValidateService(loader, reader), Logger: zap.NewNop()}
}

func call(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	res, err := h(context.Background(), mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestHandleScore(t *testing.T) {
	res := call(t, handleScore(testDeps(t, true)), map[string]any{
		"context_path":        springContext,
		"answers":             `{"cost_priority":"balanced"}`,
		"max_recommendations": float64(5),
	})
	require.False(t, res.IsError, resultText(t, res))

	var out domain.ScoringResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	require.NotEmpty(t, out.Recommendations)
	assert.Equal(t, "aks-microservices", out.Recommendations[0].ID)
	assert.Equal(t, "balanced", out.Intent.Cost.Value)
	assert.Equal(t, domain.SourceUser, out.Intent.Cost.Source)
}

func TestHandleScore_NotLoaded(t *testing.T) {
	res := call(t, handleScore(testDeps(t, false)), map[string]any{"context_path": springContext})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not loaded")
}

func TestHandleScore_MissingPath(t *testing.T) {
	res := call(t, handleScore(testDeps(t, true)), map[string]any{})
	assert.True(t, res.IsError)
}

func TestHandleScore_BadAnswers(t *testing.T) {
	res := call(t, handleScore(testDeps(t, true)), map[string]any{
		"context_path": springContext,
		"answers":      "cost_priority=balanced",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "answers must be a JSON object")
}

func TestHandleQuestions(t *testing.T) {
	res := call(t, handleQuestions(testDeps(t, false)), map[string]any{"context_path": webContext})
	require.False(t, res.IsError)

	var qs []domain.ClarificationQuestion
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &qs))
	require.NotEmpty(t, qs)
	assert.Equal(t, "availability_requirement", qs[0].ID)
}

func TestHandleLoadCatalog(t *testing.T) {
	deps := testDeps(t, false)
	res := call(t, handleLoadCatalog(deps), map[string]any{"path": e2eCatalog})
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "Loaded catalog 1.2 with 2 architectures")

	cat, err := deps.Engine.Catalog()
	require.NoError(t, err)
	assert.Len(t, cat.Architectures, 2)
}

func TestHandleLoadCatalog_TooOld(t *testing.T) {
	res := call(t, handleLoadCatalog(testDeps(t, false)), map[string]any{"path": "../../../../testdata/catalogs/legacy-0.9.json"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "0.9")
}

func TestHandleValidate(t *testing.T) {
	deps := testDeps(t, false)

	res := call(t, handleValidate(deps), map[string]any{"path": e2eCatalog, "kind": "catalog"})
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"valid": true`)

	res = call(t, handleValidate(deps), map[string]any{"path": webContext})
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), `"valid": true`)

	res = call(t, handleValidate(deps), map[string]any{"path": webContext, "kind": "diagram"})
	assert.True(t, res.IsError)
}

func TestParseAnswers(t *testing.T) {
	got, err := parseAnswers(map[string]any{"cost_priority": "balanced"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"cost_priority": "balanced"}, got)

	got, err = parseAnswers(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = parseAnswers(map[string]any{"cost_priority": 3})
	assert.Error(t, err)
}

func TestCatalogResource(t *testing.T) {
	contents, err := handleCatalogResource(testDeps(t, true))(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, "aks-microservices")

	_, err = handleCatalogResource(testDeps(t, false))(context.Background(), mcplib.ReadResourceRequest{})
	assert.Error(t, err)
}
