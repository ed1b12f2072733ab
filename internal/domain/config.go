package domain

import (
	"fmt"
	"slices"
)

// DefaultWeights are the scoring weights used when .archscore.yaml sets none.
var DefaultWeights = map[string]float64{
	ScoreDomainMatch:       0.15,
	ScoreRuntimeMatch:      0.20,
	ScoreAvailabilityMatch: 0.15,
	ScoreCostMatch:         0.10,
	ScoreSecurityMatch:     0.10,
	ScoreTechnologyOverlap: 0.20,
	ScoreCatalogQuality:    0.10,
}

// ScoringConfig holds tunable scoring parameters loaded from .archscore.yaml.
// Zero values mean "not specified" and are filled from DefaultScoringConfig.
type ScoringConfig struct {
	Weights              map[string]float64   `yaml:"weights"               json:"weights,omitempty"`
	MinCatalogVersion    string               `yaml:"min_catalog_version"   json:"min_catalog_version,omitempty"`
	MinCatalogQuality    CatalogQuality       `yaml:"min_catalog_quality"   json:"min_catalog_quality,omitempty"`
	MaxRecommendations   int                  `yaml:"max_recommendations"   json:"max_recommendations,omitempty"`
	MaxQuestions         int                  `yaml:"max_questions"         json:"max_questions,omitempty"`
	ConfidenceThresholds ConfidenceThresholds `yaml:"confidence_thresholds" json:"confidence_thresholds,omitempty"`
}

// ConfidenceThresholds are the top-score cut-offs for summary confidence levels.
type ConfidenceThresholds struct {
	High   int `yaml:"high"   json:"high,omitempty"`
	Medium int `yaml:"medium" json:"medium,omitempty"`
}

// DefaultScoringConfig returns the built-in scoring parameters.
func DefaultScoringConfig() ScoringConfig {
	weights := make(map[string]float64, len(DefaultWeights))
	for k, v := range DefaultWeights {
		weights[k] = v
	}
	return ScoringConfig{
		Weights:              weights,
		MinCatalogVersion:    "1.0",
		MinCatalogQuality:    QualityAISuggested,
		MaxRecommendations:   10,
		MaxQuestions:         4,
		ConfidenceThresholds: ConfidenceThresholds{High: 75, Medium: 55},
	}
}

// EffectiveWeight returns the configured weight for a dimension, or def if unset.
func (c ScoringConfig) EffectiveWeight(dimension string, def float64) float64 {
	if w, ok := c.Weights[dimension]; ok {
		return w
	}
	return def
}

// WithDefaults fills every unset field from DefaultScoringConfig. Explicit
// weights are kept and missing dimensions get their default weight.
func (c ScoringConfig) WithDefaults() ScoringConfig {
	out := DefaultScoringConfig()
	for k, v := range c.Weights {
		out.Weights[k] = v
	}
	if c.MinCatalogVersion != "" {
		out.MinCatalogVersion = c.MinCatalogVersion
	}
	if c.MinCatalogQuality != "" {
		out.MinCatalogQuality = c.MinCatalogQuality
	}
	if c.MaxRecommendations > 0 {
		out.MaxRecommendations = c.MaxRecommendations
	}
	if c.MaxQuestions > 0 {
		out.MaxQuestions = c.MaxQuestions
	}
	if c.ConfidenceThresholds.High > 0 {
		out.ConfidenceThresholds.High = c.ConfidenceThresholds.High
	}
	if c.ConfidenceThresholds.Medium > 0 {
		out.ConfidenceThresholds.Medium = c.ConfidenceThresholds.Medium
	}
	return out
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ScoringConfig) Validate() error {
	// 1. weight keys must be known dimensions, values non-negative
	total := 0.0
	for k, w := range c.Weights {
		if !slices.Contains(ScoreDimensions, k) {
			return fmt.Errorf("unknown scoring dimension %q in weights", k)
		}
		if w < 0 {
			return fmt.Errorf("weights[%q] = %.2f (must be >= 0)", k, w)
		}
	}
	for _, dim := range ScoreDimensions {
		total += c.EffectiveWeight(dim, DefaultWeights[dim])
	}
	if total <= 0 {
		return fmt.Errorf("weights must not all be zero")
	}

	// 2. version floor must parse
	if c.MinCatalogVersion != "" {
		if _, _, err := ParseVersion(c.MinCatalogVersion); err != nil {
			return fmt.Errorf("min_catalog_version: %w", err)
		}
	}

	// 3. quality floor must be a known tier
	if c.MinCatalogQuality != "" && c.MinCatalogQuality.Rank() == 0 {
		return fmt.Errorf("unknown min_catalog_quality %q (valid: curated, ai_enriched, ai_suggested, example_only)", c.MinCatalogQuality)
	}

	// 4. limits
	if c.MaxRecommendations < 0 {
		return fmt.Errorf("max_recommendations must be > 0 (got %d)", c.MaxRecommendations)
	}
	if c.MaxQuestions < 0 {
		return fmt.Errorf("max_questions must be > 0 (got %d)", c.MaxQuestions)
	}

	// 5. thresholds in [0,100], medium not above high
	th := c.ConfidenceThresholds
	if th.High < 0 || th.High > 100 || th.Medium < 0 || th.Medium > 100 {
		return fmt.Errorf("confidence_thresholds must be between 0 and 100")
	}
	if th.High > 0 && th.Medium > th.High {
		return fmt.Errorf("confidence_thresholds.medium (%d) exceeds high (%d)", th.Medium, th.High)
	}

	return nil
}
