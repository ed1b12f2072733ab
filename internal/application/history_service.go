package application

import (
	"fmt"
	"time"

	"github.com/archscore/archscore/internal/domain"
)

// HistoryService records scoring runs with catalog provenance.
type HistoryService struct {
	history domain.RunHistory
	commits domain.CommitResolver
	now     func() time.Time
}

func NewHistoryService(history domain.RunHistory, commits domain.CommitResolver) *HistoryService {
	return &HistoryService{history: history, commits: commits, now: time.Now}
}

// Record appends a run entry for res under rootPath. The catalog commit is
// resolved best-effort from the repository holding catalogPath.
func (s *HistoryService) Record(rootPath, catalogPath string, res *domain.ScoringResult) (domain.RunEntry, error) {
	entry := domain.RunEntry{
		Timestamp:             s.now().UTC().Format(time.RFC3339),
		ApplicationName:       res.ApplicationName,
		CatalogVersion:        res.CatalogVersion,
		PrimaryRecommendation: res.Summary.PrimaryRecommendation,
		TopScore:              res.TopScore(),
		Eligible:              res.EligibleCount,
		Excluded:              len(res.Excluded),
		Confidence:            res.Summary.ConfidenceLevel,
	}
	if s.commits != nil && catalogPath != "" {
		if hash, err := s.commits.CommitHash(catalogPath); err == nil {
			entry.CatalogCommit = hash
		}
	}
	if err := s.history.Save(rootPath, entry); err != nil {
		return entry, fmt.Errorf("saving history: %w", err)
	}
	return entry, nil
}

// List returns recorded runs, optionally restricted to one application.
func (s *HistoryService) List(rootPath, application string) ([]domain.RunEntry, error) {
	entries, err := s.history.Load(rootPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if application == "" {
		return entries, nil
	}
	var out []domain.RunEntry
	for _, e := range entries {
		if e.ApplicationName == application {
			out = append(out, e)
		}
	}
	return out, nil
}
