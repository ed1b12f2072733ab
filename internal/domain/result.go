package domain

// ClarificationQuestion asks the user to resolve one uncertain intent dimension.
type ClarificationQuestion struct {
	ID           string           `json:"id"`
	Dimension    Dimension        `json:"dimension"`
	Question     string           `json:"question"`
	Options      []QuestionOption `json:"options"`
	CurrentValue string           `json:"current_value,omitempty"`
	Required     bool             `json:"required"`
}

// QuestionOption is one selectable answer.
type QuestionOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Exclusion constraint names, in evaluation order.
const (
	ConstraintCompliance           = "compliance"
	ConstraintAvailability         = "availability"
	ConstraintServiceCompatibility = "service_compatibility"
	ConstraintCatalogQuality       = "catalog_quality"
)

// ExcludedArchitecture records why an entry failed eligibility.
type ExcludedArchitecture struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Constraint string   `json:"constraint"`
	Reasons    []string `json:"reasons"`
}

// Scoring dimensions recognized in weight configuration and score breakdowns.
const (
	ScoreDomainMatch       = "domain_match"
	ScoreRuntimeMatch      = "runtime_match"
	ScoreAvailabilityMatch = "availability_match"
	ScoreCostMatch         = "cost_match"
	ScoreSecurityMatch     = "security_match"
	ScoreTechnologyOverlap = "technology_overlap"
	ScoreCatalogQuality    = "catalog_quality"
)

// ScoreDimensions enumerates scoring dimensions in reporting order.
var ScoreDimensions = []string{
	ScoreDomainMatch, ScoreRuntimeMatch, ScoreAvailabilityMatch, ScoreCostMatch,
	ScoreSecurityMatch, ScoreTechnologyOverlap, ScoreCatalogQuality,
}

// ArchitectureRecommendation is a scored eligible entry.
type ArchitectureRecommendation struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	PatternName     string             `json:"pattern_name"`
	Description     string             `json:"description,omitempty"`
	LikelihoodScore int                `json:"likelihood_score"`
	Breakdown       map[string]float64 `json:"breakdown"`
	FitSummary      string             `json:"fit_summary,omitempty"`
	StruggleSummary string             `json:"struggle_summary,omitempty"`
	CatalogQuality  CatalogQuality     `json:"catalog_quality"`
	CoreServices    []string           `json:"core_services,omitempty"`
	DiagramURL      string             `json:"diagram_url,omitempty"`
	LearnURL        string             `json:"learn_url,omitempty"`
}

// ResultSummary condenses the outcome for report headers.
type ResultSummary struct {
	PrimaryRecommendation string   `json:"primary_recommendation,omitempty"`
	ConfidenceLevel       string   `json:"confidence_level"`
	KeyDrivers            []string `json:"key_drivers"`
	KeyRisks              []string `json:"key_risks"`
}

// Summary confidence levels.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// ScoringResult is the complete output of one scoring call.
type ScoringResult struct {
	ApplicationName          string                       `json:"application_name"`
	CatalogVersion           string                       `json:"catalog_version"`
	CatalogArchitectureCount int                          `json:"catalog_architecture_count"`
	EligibleCount            int                          `json:"eligible_count"`
	Intent                   ArchitecturalIntent          `json:"intent"`
	ClarificationQuestions   []ClarificationQuestion      `json:"clarification_questions"`
	Recommendations          []ArchitectureRecommendation `json:"recommendations"`
	Excluded                 []ExcludedArchitecture       `json:"excluded"`
	Summary                  ResultSummary                `json:"summary"`
	Warnings                 []string                     `json:"warnings"`
}

// TopScore returns the best likelihood score, or 0 when nothing was recommended.
func (r *ScoringResult) TopScore() int {
	if len(r.Recommendations) == 0 {
		return 0
	}
	return r.Recommendations[0].LikelihoodScore
}

// RunEntry is one persisted scoring run.
type RunEntry struct {
	RunID                 string `json:"run_id"`
	Timestamp             string `json:"timestamp"`
	ApplicationName       string `json:"application_name"`
	CatalogVersion        string `json:"catalog_version"`
	CatalogCommit         string `json:"catalog_commit,omitempty"`
	PrimaryRecommendation string `json:"primary_recommendation,omitempty"`
	TopScore              int    `json:"top_score"`
	Eligible              int    `json:"eligible"`
	Excluded              int    `json:"excluded"`
	Confidence            string `json:"confidence"`
}

// ValidationReport lists problems found in a catalog or context document.
// Issues make the document unusable; advisories only reduce scoring quality.
type ValidationReport struct {
	Path       string   `json:"path"`
	Valid      bool     `json:"valid"`
	Version    string   `json:"version,omitempty"`
	Entries    int      `json:"entries,omitempty"`
	Issues     []string `json:"issues"`
	Advisories []string `json:"advisories"`
}
