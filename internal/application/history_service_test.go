package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/archscore/archscore/internal/adapters/outbound/history"
	"github.com/archscore/archscore/internal/application"
	"github.com/archscore/archscore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCommit struct {
	hash string
	err  error
}

func (f fixedCommit) CommitHash(string) (string, error) { return f.hash, f.err }

type failingHistory struct{}

func (failingHistory) Save(string, domain.RunEntry) error { return errors.New("disk full") }
func (failingHistory) Load(string) ([]domain.RunEntry, error) {
	return nil, errors.New("unreadable")
}

func sampleResult(app string, top int) *domain.ScoringResult {
	return &domain.ScoringResult{
		ApplicationName: app,
		CatalogVersion:  "1.2",
		EligibleCount:   1,
		Recommendations: []domain.ArchitectureRecommendation{{ID: "aks", Name: "Microservices on AKS", LikelihoodScore: top}},
		Excluded:        []domain.ExcludedArchitecture{{ID: "mainframe"}},
		Summary:         domain.ResultSummary{PrimaryRecommendation: "Microservices on AKS", ConfidenceLevel: domain.LevelHigh},
	}
}

func TestHistoryService_RecordAndList(t *testing.T) {
	dir := t.TempDir()
	svc := application.NewHistoryService(history.New(), fixedCommit{hash: "abc123"})

	entry, err := svc.Record(dir, "catalog.json", sampleResult("OrderService", 95))
	require.NoError(t, err)
	assert.Equal(t, "abc123", entry.CatalogCommit)
	assert.Equal(t, 95, entry.TopScore)
	assert.Equal(t, 1, entry.Eligible)
	assert.Equal(t, 1, entry.Excluded)
	assert.Equal(t, domain.LevelHigh, entry.Confidence)
	_, err = time.Parse(time.RFC3339, entry.Timestamp)
	assert.NoError(t, err)

	_, err = svc.Record(dir, "catalog.json", sampleResult("Timesheet", 60))
	require.NoError(t, err)

	all, err := svc.List(dir, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotEmpty(t, all[0].RunID)
	assert.NotEqual(t, all[0].RunID, all[1].RunID)

	orders, err := svc.List(dir, "OrderService")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Microservices on AKS", orders[0].PrimaryRecommendation)
}

func TestHistoryService_CommitIsBestEffort(t *testing.T) {
	svc := application.NewHistoryService(history.New(), fixedCommit{err: errors.New("not a repository")})

	entry, err := svc.Record(t.TempDir(), "catalog.json", sampleResult("OrderService", 95))
	require.NoError(t, err)
	assert.Empty(t, entry.CatalogCommit)
}

func TestHistoryService_EmptyResult(t *testing.T) {
	svc := application.NewHistoryService(history.New(), nil)

	entry, err := svc.Record(t.TempDir(), "", &domain.ScoringResult{ApplicationName: "Empty"})
	require.NoError(t, err)
	assert.Equal(t, 0, entry.TopScore)
	assert.Empty(t, entry.PrimaryRecommendation)
}

func TestHistoryService_StoreErrors(t *testing.T) {
	svc := application.NewHistoryService(failingHistory{}, nil)

	_, err := svc.Record(t.TempDir(), "", sampleResult("OrderService", 95))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving history")

	_, err = svc.List(t.TempDir(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading history")
}
