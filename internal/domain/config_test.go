package domain_test

import (
	"testing"

	"github.com/archscore/archscore/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultScoringConfig(t *testing.T) {
	cfg := domain.DefaultScoringConfig()
	assert.Equal(t, "1.0", cfg.MinCatalogVersion)
	assert.Equal(t, domain.QualityAISuggested, cfg.MinCatalogQuality)
	assert.Equal(t, 10, cfg.MaxRecommendations)
	assert.Equal(t, 4, cfg.MaxQuestions)
	assert.Len(t, cfg.Weights, len(domain.ScoreDimensions))
	assert.NoError(t, cfg.Validate())

	sum := 0.0
	for _, w := range cfg.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestDefaultScoringConfig_ReturnsFreshWeights(t *testing.T) {
	cfg := domain.DefaultScoringConfig()
	cfg.Weights[domain.ScoreDomainMatch] = 9
	assert.InDelta(t, 0.15, domain.DefaultScoringConfig().Weights[domain.ScoreDomainMatch], 0.001)
}

func TestScoringConfig_EffectiveWeight(t *testing.T) {
	cfg := domain.ScoringConfig{Weights: map[string]float64{domain.ScoreCostMatch: 0.5}}
	assert.InDelta(t, 0.5, cfg.EffectiveWeight(domain.ScoreCostMatch, 0.1), 0.001)
	assert.InDelta(t, 0.2, cfg.EffectiveWeight(domain.ScoreRuntimeMatch, 0.2), 0.001)
}

func TestScoringConfig_Validate(t *testing.T) {
	allZero := map[string]float64{}
	for _, d := range domain.ScoreDimensions {
		allZero[d] = 0
	}

	tests := []struct {
		name    string
		cfg     domain.ScoringConfig
		wantErr string
	}{
		{"zero value", domain.ScoringConfig{}, ""},
		{"unknown weight", domain.ScoringConfig{Weights: map[string]float64{"vibes": 1}}, "unknown scoring dimension"},
		{"negative weight", domain.ScoringConfig{Weights: map[string]float64{domain.ScoreCostMatch: -1}}, "must be >= 0"},
		{"all zero", domain.ScoringConfig{Weights: allZero}, "must not all be zero"},
		{"bad version", domain.ScoringConfig{MinCatalogVersion: "one"}, "min_catalog_version"},
		{"bad quality", domain.ScoringConfig{MinCatalogQuality: "gold"}, "unknown min_catalog_quality"},
		{"negative max", domain.ScoringConfig{MaxRecommendations: -1}, "max_recommendations"},
		{"negative questions", domain.ScoringConfig{MaxQuestions: -2}, "max_questions"},
		{"threshold range", domain.ScoringConfig{ConfidenceThresholds: domain.ConfidenceThresholds{High: 120}}, "between 0 and 100"},
		{"medium above high", domain.ScoringConfig{ConfidenceThresholds: domain.ConfidenceThresholds{High: 50, Medium: 60}}, "exceeds high"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestScoringConfig_WithDefaults(t *testing.T) {
	cfg := domain.ScoringConfig{
		Weights:            map[string]float64{domain.ScoreCostMatch: 0.4},
		MaxRecommendations: 3,
		MinCatalogQuality:  domain.QualityCurated,
	}.WithDefaults()

	assert.Equal(t, 0.4, cfg.Weights[domain.ScoreCostMatch])
	assert.Equal(t, domain.DefaultWeights[domain.ScoreRuntimeMatch], cfg.Weights[domain.ScoreRuntimeMatch])
	assert.Equal(t, 3, cfg.MaxRecommendations)
	assert.Equal(t, 4, cfg.MaxQuestions)
	assert.Equal(t, "1.0", cfg.MinCatalogVersion)
	assert.Equal(t, domain.QualityCurated, cfg.MinCatalogQuality)
	assert.Equal(t, domain.ConfidenceThresholds{High: 75, Medium: 55}, cfg.ConfidenceThresholds)
}

func TestScoringConfig_WithDefaultsOnZeroValue(t *testing.T) {
	assert.Equal(t, domain.DefaultScoringConfig(), domain.ScoringConfig{}.WithDefaults())
}
