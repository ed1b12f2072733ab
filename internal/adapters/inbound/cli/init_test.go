package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/archscore/archscore/internal/adapters/outbound/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, ".archscore.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "weights:")
	assert.Contains(t, string(data), "technology_overlap: 0.20")
	assert.Contains(t, string(data), "min_catalog_quality: ai_suggested")
}

func TestInitCmd_OutputLoads(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := run(t, "init", tmpDir)
	require.NoError(t, err)

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxRecommendations)
	assert.Equal(t, 75, cfg.ConfidenceThresholds.High)
	assert.InDelta(t, 0.20, cfg.Weights["runtime_match"], 1e-9)
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".archscore.yaml"), []byte("existing"), 0644))

	_, err := run(t, "init", tmpDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_Force(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".archscore.yaml"), []byte("existing"), 0644))

	_, err := run(t, "init", tmpDir, "--force")
	require.NoError(t, err)
}
