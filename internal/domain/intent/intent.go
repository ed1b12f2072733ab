// Package intent derives an ArchitecturalIntent from an application context.
//
// Each dimension is an ordered table of rules. Rules are evaluated in order
// and the first one that classifies the context wins; when none does, the
// dimension is unknown. Derivation is pure and deterministic.
package intent

import (
	"strings"

	"github.com/archscore/archscore/internal/domain"
)

// Rule is one heuristic in a dimension's priority chain.
type Rule struct {
	Name  string
	Apply func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool)
}

var tables = map[domain.Dimension][]Rule{
	domain.DimensionAvailability: availabilityRules,
	domain.DimensionCompliance:   complianceRules,
	domain.DimensionCost:         costRules,
	domain.DimensionRuntime:      runtimeRules,
	domain.DimensionDomain:       domainRules,
}

// Rules returns the rule chain for a dimension.
func Rules(d domain.Dimension) []Rule {
	return tables[d]
}

// Derive classifies every dimension of ctx.
func Derive(ctx *domain.ApplicationContext) domain.ArchitecturalIntent {
	var in domain.ArchitecturalIntent
	for _, d := range domain.Dimensions {
		in = in.With(d, DeriveDimension(ctx, d))
	}
	in.Treatment = treatment(ctx)
	in.Criticality = strings.TrimSpace(ctx.Overview.BusinessCriticality)
	return in
}

// DeriveDimension runs the rule chain of a single dimension.
func DeriveDimension(ctx *domain.ApplicationContext, d domain.Dimension) domain.IntentSignal {
	for _, r := range tables[d] {
		if s, ok := r.Apply(ctx); ok {
			return s
		}
	}
	return domain.UnknownSignal()
}

func treatment(ctx *domain.ApplicationContext) string {
	if t := parseTreatment(ctx.Overview.Treatment); t != "" {
		return t
	}
	for _, s := range ctx.Servers {
		if t := parseTreatment(s.TreatmentOption); t != "" {
			return t
		}
		if t := parseTreatment(s.MigrationStrategy); t != "" {
			return t
		}
	}
	return ""
}

func parseTreatment(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range domain.Treatments {
		if s == string(t) {
			return s
		}
	}
	return ""
}

func derived(value string, c domain.Confidence, rationale string) domain.IntentSignal {
	return domain.IntentSignal{Value: value, Confidence: c, Source: domain.SourceDerived, Rationale: rationale}
}

func explicit(value, rationale string) domain.IntentSignal {
	return domain.IntentSignal{Value: value, Confidence: domain.ConfidenceHigh, Source: domain.SourceExplicit, Rationale: rationale}
}

// criticalityLevel folds free-text criticality into critical, high, medium, low or "".
func criticalityLevel(ctx *domain.ApplicationContext) string {
	c := strings.ToLower(strings.TrimSpace(ctx.Overview.BusinessCriticality))
	switch {
	case c == "":
		return ""
	case strings.Contains(c, "critical") || strings.Contains(c, "tier 0") || strings.Contains(c, "tier 1"):
		return "critical"
	case strings.HasPrefix(c, "high"):
		return "high"
	case strings.HasPrefix(c, "med"):
		return "medium"
	case strings.HasPrefix(c, "low"):
		return "low"
	}
	return ""
}
