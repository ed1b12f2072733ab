package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/archscore/archscore/internal/adapters/inbound/cli"
	"github.com/archscore/archscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	e2eCatalog    = "../../../../testdata/catalogs/e2e.json"
	sampleCatalog = "../../../../testdata/catalogs/sample.yaml"
	legacyCatalog = "../../../../testdata/catalogs/legacy-0.9.json"
	springContext = "../../../../testdata/contexts/springboot-containerized.json"
	webContext    = "../../../../testdata/contexts/minimal-web.json"
)

// isolate keeps history, stored results and settings out of the package dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ARCHSCORE_HISTORY_DIR", dir)
	t.Setenv("ARCHSCORE_CATALOG", "")
	t.Setenv("ARCHSCORE_CONFIG", "")
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestScoreCommand_JSON(t *testing.T) {
	isolate(t)
	out, err := run(t, "score", springContext, "--catalog", e2eCatalog, "--json")
	require.NoError(t, err)

	var res domain.ScoringResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "aks-microservices", res.Recommendations[0].ID)
	require.Len(t, res.Excluded, 1)
	assert.Equal(t, "mainframe-rehost", res.Excluded[0].ID)
}

func TestScoreCommand_Answers(t *testing.T) {
	isolate(t)
	out, err := run(t, "score", springContext, "--catalog", e2eCatalog, "--json",
		"--answer", "cost_priority=balanced", "--answer", "shoe_size=42")
	require.NoError(t, err)

	var res domain.ScoringResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "balanced", res.Intent.Cost.Value)
	assert.Contains(t, res.Warnings, `Ignored unknown answer "shoe_size"`)
}

func TestScoreCommand_DefaultTUI(t *testing.T) {
	isolate(t)
	out, err := run(t, "score", springContext, "--catalog", e2eCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, "archscore")
	assert.Contains(t, out, "Microservices on AKS")
}

func TestScoreCommand_CatalogFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("ARCHSCORE_CATALOG", e2eCatalog)
	_, err := run(t, "score", springContext, "--json")
	assert.NoError(t, err)
}

func TestScoreCommand_NoCatalog(t *testing.T) {
	isolate(t)
	_, err := run(t, "score", springContext)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog given")
}

func TestScoreCommand_OldCatalog(t *testing.T) {
	isolate(t)
	_, err := run(t, "score", springContext, "--catalog", legacyCatalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0.9")
}

func TestScoreCommand_CIFails(t *testing.T) {
	isolate(t)
	_, err := run(t, "score", webContext, "--catalog", e2eCatalog, "--ci", "--min", "100")
	assert.Error(t, err)
}

func TestScoreCommand_CIPasses(t *testing.T) {
	isolate(t)
	_, err := run(t, "score", springContext, "--catalog", e2eCatalog, "--ci", "--min", "70")
	assert.NoError(t, err)
}

func TestScoreCommand_MaxAndReport(t *testing.T) {
	isolate(t)
	out, err := run(t, "score", webContext, "--catalog", sampleCatalog, "--max", "1", "--json")
	require.NoError(t, err)
	var res domain.ScoringResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Recommendations, 1)

	out, err = run(t, "report", "Timesheet", "--json")
	require.NoError(t, err)
	var stored domain.ScoringResult
	require.NoError(t, json.Unmarshal([]byte(out), &stored))
	assert.Equal(t, res.Recommendations, stored.Recommendations)

	out, err = run(t, "history", "--json")
	require.NoError(t, err)
	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Timesheet", entries[0].ApplicationName)
}

func TestScoreCommand_NoHistory(t *testing.T) {
	isolate(t)
	_, err := run(t, "score", webContext, "--catalog", sampleCatalog, "--no-history")
	require.NoError(t, err)

	_, err = run(t, "report", "Timesheet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stored result")

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No scoring history found.")
}

func TestQuestionsCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "questions", webContext, "--json")
	require.NoError(t, err)

	var qs []domain.ClarificationQuestion
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	require.NotEmpty(t, qs)
	assert.Equal(t, "availability_requirement", qs[0].ID)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "archscore dev")
}
