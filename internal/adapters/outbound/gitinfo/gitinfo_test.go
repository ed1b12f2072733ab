package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/archscore/archscore/internal/adapters/outbound/gitinfo"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with catalogs/catalog.json committed.
func initRepo(t *testing.T) (dir, hash string) {
	t.Helper()
	dir = t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "catalogs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalogs", "catalog.json"), []byte(`{"version": "1.0"}`), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("catalogs/catalog.json")
	require.NoError(t, err)
	h, err := wt.Commit("add catalog", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Unix(1700000000, 0)},
	})
	require.NoError(t, err)
	return dir, h.String()
}

func TestGitInfo_IsGitRepo(t *testing.T) {
	dir, _ := initRepo(t)
	gi := gitinfo.New()
	assert.True(t, gi.IsGitRepo(dir))
	assert.False(t, gi.IsGitRepo(t.TempDir()))
}

func TestGitInfo_CommitHash_FromDirectory(t *testing.T) {
	dir, want := initRepo(t)
	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Equal(t, want, hash)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestGitInfo_CommitHash_FromNestedFile(t *testing.T) {
	dir, want := initRepo(t)
	hash, err := gitinfo.New().CommitHash(filepath.Join(dir, "catalogs", "catalog.json"))
	require.NoError(t, err)
	assert.Equal(t, want, hash)
}

func TestGitInfo_CommitHash_NotGitRepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

func TestGitInfo_CommitHash_NoCommits(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = gitinfo.New().CommitHash(dir)
	assert.Error(t, err)
}
