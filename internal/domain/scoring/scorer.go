package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/archscore/archscore/internal/domain"
)

// Weights maps scoring dimensions to their relative weight.
type Weights map[string]float64

// WeightsFromConfig resolves every scoring dimension against cfg, falling
// back to domain.DefaultWeights for dimensions cfg leaves unset.
func WeightsFromConfig(cfg domain.ScoringConfig) Weights {
	w := make(Weights, len(domain.ScoreDimensions))
	for _, dim := range domain.ScoreDimensions {
		w[dim] = cfg.EffectiveWeight(dim, domain.DefaultWeights[dim])
	}
	return w
}

// Scorer ranks eligible entries. Its weights are fixed at construction so
// every entry in a run is compared under the same rubric.
type Scorer struct {
	weights Weights
	total   float64
}

// NewScorer copies w. Dimensions missing from w weigh zero.
func NewScorer(w Weights) *Scorer {
	s := &Scorer{weights: make(Weights, len(domain.ScoreDimensions))}
	for _, dim := range domain.ScoreDimensions {
		v := w[dim]
		if v < 0 {
			v = 0
		}
		s.weights[dim] = v
		s.total += v
	}
	return s
}

// Weight returns the weight applied to a dimension.
func (s *Scorer) Weight(dim string) float64 { return s.weights[dim] }

// Score computes a recommendation for every entry and returns them ordered by
// likelihood (desc), catalog quality tier (desc), pattern name, then ID.
func (s *Scorer) Score(eligible []domain.ArchitectureEntry, ctx *domain.ApplicationContext, in domain.ArchitecturalIntent) []domain.ArchitectureRecommendation {
	candidates := serviceCandidates(ctx)
	out := make([]domain.ArchitectureRecommendation, 0, len(eligible))
	for _, e := range eligible {
		out = append(out, s.recommend(e, in, candidates))
	}
	Sort(out)
	return out
}

func (s *Scorer) recommend(e domain.ArchitectureEntry, in domain.ArchitecturalIntent, candidates []string) domain.ArchitectureRecommendation {
	sub := map[string]float64{
		domain.ScoreDomainMatch:       domainMatch(e, in.Domain),
		domain.ScoreRuntimeMatch:      runtimeMatch(e, in.Runtime),
		domain.ScoreAvailabilityMatch: availabilityMatch(e, in.Availability),
		domain.ScoreCostMatch:         costMatch(e, in.Cost),
		domain.ScoreSecurityMatch:     securityMatch(e, in.Compliance),
		domain.ScoreTechnologyOverlap: technologyOverlap(e, candidates),
		domain.ScoreCatalogQuality:    qualityBonus(e.CatalogQuality),
	}

	breakdown := make(map[string]float64, len(sub))
	for dim, v := range sub {
		breakdown[dim] = round3(v)
	}

	return domain.ArchitectureRecommendation{
		ID:              e.ID,
		Name:            e.Name,
		PatternName:     e.DisplayPattern(),
		Description:     e.Description,
		LikelihoodScore: s.likelihood(sub),
		Breakdown:       breakdown,
		FitSummary:      fitSummary(sub),
		StruggleSummary: struggleSummary(sub),
		CatalogQuality:  e.CatalogQuality,
		CoreServices:    append([]string(nil), e.CoreServices...),
		DiagramURL:      e.DiagramURL,
		LearnURL:        e.LearnURL,
	}
}

func (s *Scorer) likelihood(sub map[string]float64) int {
	if s.total <= 0 {
		return 0
	}
	sum := 0.0
	for _, dim := range domain.ScoreDimensions {
		sum += s.weights[dim] * sub[dim]
	}
	score := int(math.Round(100 * sum / s.total))
	return max(0, min(100, score))
}

// Sort orders recommendations in place: likelihood desc, catalog quality
// tier desc, pattern name asc, ID asc.
func Sort(recs []domain.ArchitectureRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if a.LikelihoodScore != b.LikelihoodScore {
			return a.LikelihoodScore > b.LikelihoodScore
		}
		if a.CatalogQuality.Rank() != b.CatalogQuality.Rank() {
			return a.CatalogQuality.Rank() > b.CatalogQuality.Rank()
		}
		if a.PatternName != b.PatternName {
			return a.PatternName < b.PatternName
		}
		return a.ID < b.ID
	})
}

var dimensionLabels = map[string]string{
	domain.ScoreDomainMatch:       "workload domain",
	domain.ScoreRuntimeMatch:      "runtime model",
	domain.ScoreAvailabilityMatch: "availability",
	domain.ScoreCostMatch:         "cost profile",
	domain.ScoreSecurityMatch:     "security level",
	domain.ScoreTechnologyOverlap: "service overlap",
	domain.ScoreCatalogQuality:    "catalog quality",
}

// Label returns a human-readable name for a scoring dimension.
func Label(dim string) string {
	if l, ok := dimensionLabels[dim]; ok {
		return l
	}
	return dim
}

func fitSummary(sub map[string]float64) string {
	var strong []string
	for _, dim := range domain.ScoreDimensions {
		if sub[dim] >= 0.8 {
			strong = append(strong, Label(dim))
		}
	}
	if len(strong) == 0 {
		return ""
	}
	return "Strong fit on " + strings.Join(strong, ", ")
}

func struggleSummary(sub map[string]float64) string {
	var weak []string
	for _, dim := range domain.ScoreDimensions {
		if sub[dim] <= 0.3 {
			weak = append(weak, Label(dim))
		}
	}
	if len(weak) == 0 {
		return ""
	}
	return "Weak on " + strings.Join(weak, ", ")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
