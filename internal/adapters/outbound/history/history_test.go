package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/archscore/archscore/internal/adapters/outbound/history"
	"github.com/archscore/archscore/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	entry := domain.RunEntry{
		RunID:                 "run-1",
		Timestamp:             "2026-02-25T10:00:00Z",
		ApplicationName:       "OrderService",
		CatalogVersion:        "1.2",
		CatalogCommit:         "abc1234",
		PrimaryRecommendation: "Microservices on AKS",
		TopScore:              95,
		Eligible:              1,
		Excluded:              1,
		Confidence:            domain.LevelHigh,
	}
	require.NoError(t, h.Save(dir, entry))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry, entries[0])
}

func TestHistory_AssignsRunID(t *testing.T) {
	dir := t.TempDir()
	h := history.New()
	require.NoError(t, h.Save(dir, domain.RunEntry{ApplicationName: "a"}))
	require.NoError(t, h.Save(dir, domain.RunEntry{ApplicationName: "b"}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		_, err := uuid.Parse(e.RunID)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, entries[0].RunID, entries[1].RunID)
}

func TestHistory_AppendMultiple(t *testing.T) {
	dir := t.TempDir()
	h := history.New()

	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t1", TopScore: 47}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t2", TopScore: 62}))
	require.NoError(t, h.Save(dir, domain.RunEntry{Timestamp: "t3", TopScore: 85}))

	entries, err := h.Load(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 47, entries[0].TopScore)
	assert.Equal(t, 85, entries[2].TopScore)
}

func TestHistory_LoadEmpty(t *testing.T) {
	entries, err := history.New().Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesDirectory(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "deep", "nested")
	h := history.New()

	require.NoError(t, h.Save(nestedDir, domain.RunEntry{Timestamp: "t1", TopScore: 50}))

	entries, err := h.Load(nestedDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistory_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	fp := filepath.Join(dir, ".archscore", "history", "runs.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(fp), 0755))
	require.NoError(t, os.WriteFile(fp, []byte("{broken"), 0644))

	_, err := history.New().Load(dir)
	assert.Error(t, err)
	assert.Error(t, history.New().Save(dir, domain.RunEntry{}))
}
