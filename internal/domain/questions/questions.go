// Package questions turns uncertain intent dimensions into clarification
// questions and folds user answers back into the intent.
package questions

import (
	"sort"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/intent"
)

// DefaultMax caps the number of questions asked in one round.
const DefaultMax = 4

type template struct {
	id        string
	dimension domain.Dimension
	text      string
	options   []domain.QuestionOption
}

// templates are ordered by clarification priority.
var templates = []template{
	{
		id:        "availability_requirement",
		dimension: domain.DimensionAvailability,
		text:      "What availability does this application need after migration?",
		options: []domain.QuestionOption{
			{Value: "single_region", Label: "Single region (standard SLA)"},
			{Value: "zone_redundant", Label: "Zone redundant within one region"},
			{Value: "multi_region_active_passive", Label: "Multi-region with failover (active/passive)"},
			{Value: "multi_region_active_active", Label: "Multi-region active/active"},
		},
	},
	{
		id:        "compliance_requirements",
		dimension: domain.DimensionCompliance,
		text:      "Which compliance posture applies to this application?",
		options: []domain.QuestionOption{
			{Value: "basic", Label: "No specific compliance requirements"},
			{Value: "enterprise", Label: "Enterprise security baseline"},
			{Value: "regulated", Label: "Regulated (GDPR, SOC 2, ISO 27001, PII)"},
			{Value: "highly_regulated", Label: "Highly regulated (HIPAA, PCI DSS, FedRAMP)"},
		},
	},
	{
		id:        "cost_priority",
		dimension: domain.DimensionCost,
		text:      "How should cost be balanced against capability?",
		options: []domain.QuestionOption{
			{Value: "cost_minimized", Label: "Minimize cost"},
			{Value: "balanced", Label: "Balance cost and capability"},
			{Value: "scale_optimized", Label: "Optimize for scale and performance"},
			{Value: "innovation_first", Label: "Prioritize innovation and speed"},
		},
	},
	{
		id:        "runtime_model",
		dimension: domain.DimensionRuntime,
		text:      "How does the application run today?",
		options: []domain.QuestionOption{
			{Value: "microservices", Label: "Independently deployed services"},
			{Value: "event_driven", Label: "Event or message driven"},
			{Value: "api", Label: "API backend"},
			{Value: "n_tier", Label: "Classic web, app and database tiers"},
			{Value: "batch", Label: "Scheduled or batch jobs"},
			{Value: "monolith", Label: "Single deployable monolith"},
		},
	},
	{
		id:        "workload_domain",
		dimension: domain.DimensionDomain,
		text:      "What best describes the workload?",
		options: []domain.QuestionOption{
			{Value: "web", Label: "Web application or portal"},
			{Value: "data", Label: "Data platform or analytics"},
			{Value: "integration", Label: "Integration or messaging hub"},
			{Value: "security", Label: "Security or identity service"},
			{Value: "ai", Label: "AI or machine learning"},
			{Value: "infrastructure", Label: "Infrastructure or host workload"},
		},
	},
}

func (t template) option(answer string) (string, bool) {
	a := strings.ToLower(strings.TrimSpace(answer))
	for _, o := range t.options {
		if o.Value == a {
			return o.Value, true
		}
	}
	return "", false
}

func (t template) question(current domain.IntentSignal) domain.ClarificationQuestion {
	return domain.ClarificationQuestion{
		ID:           t.id,
		Dimension:    t.dimension,
		Question:     t.text,
		Options:      append([]domain.QuestionOption(nil), t.options...),
		CurrentValue: current.Value,
		Required:     current.Confidence == domain.ConfidenceUnknown,
	}
}

// Generate returns one question per unknown or low-confidence dimension that
// the user has not already answered, in priority order, capped at limit.
// limit <= 0 means DefaultMax.
func Generate(ctx *domain.ApplicationContext, in domain.ArchitecturalIntent, limit int) []domain.ClarificationQuestion {
	if limit <= 0 {
		limit = DefaultMax
	}
	out := []domain.ClarificationQuestion{}
	for _, t := range templates {
		if len(out) == limit {
			break
		}
		s := in.Signal(t.dimension)
		if s.Source == domain.SourceUser {
			continue
		}
		if s.Confidence == domain.ConfidenceUnknown || s.Confidence == domain.ConfidenceLow || !s.Known() {
			out = append(out, t.question(s))
		}
	}
	return out
}

// ApplyAnswers re-derives only the dimensions referenced by answers. A valid
// option value becomes a user-sourced signal; an unrecognized value falls back
// to the derivation rules. Unknown answer keys are ignored. Applying the same
// answers twice yields the same intent.
func ApplyAnswers(ctx *domain.ApplicationContext, in domain.ArchitecturalIntent, answers map[string]string) domain.ArchitecturalIntent {
	out := in
	for _, t := range templates {
		answer, ok := answers[t.id]
		if !ok {
			continue
		}
		if value, valid := t.option(answer); valid {
			out = out.With(t.dimension, domain.IntentSignal{
				Value:      value,
				Confidence: domain.ConfidenceHigh,
				Source:     domain.SourceUser,
				Rationale:  "answered " + t.id,
			})
			continue
		}
		out = out.With(t.dimension, intent.DeriveDimension(ctx, t.dimension))
	}
	return out
}

// IDs lists all question IDs in priority order.
func IDs() []string {
	ids := make([]string, len(templates))
	for i, t := range templates {
		ids[i] = t.id
	}
	return ids
}

// UnknownAnswerKeys returns answer keys that match no question, sorted.
func UnknownAnswerKeys(answers map[string]string) []string {
	var out []string
	for k := range answers {
		if _, ok := lookup(k); !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// InvalidAnswers returns question IDs whose answer is not a listed option, in priority order.
func InvalidAnswers(answers map[string]string) []string {
	var out []string
	for _, t := range templates {
		if a, ok := answers[t.id]; ok {
			if _, valid := t.option(a); !valid {
				out = append(out, t.id)
			}
		}
	}
	return out
}

func lookup(id string) (template, bool) {
	for _, t := range templates {
		if t.id == id {
			return t, true
		}
	}
	return template{}, false
}
