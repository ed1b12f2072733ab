package questions_test

import (
	"testing"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/intent"
	"github.com/archscore/archscore/internal/domain/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webApp() *domain.ApplicationContext {
	return &domain.ApplicationContext{
		Overview: domain.AppOverview{
			ApplicationName:     "Timesheet",
			AppType:             "Web Application",
			BusinessCriticality: "Low",
			Treatment:           "rehost",
		},
		DetectedTechnologies: []string{"IIS"},
		Servers: []domain.ServerDetails{
			{Machine: "web01", Environment: "Production", Cores: 2, MemoryGB: 4, CPUUsage: 8},
		},
	}
}

func ids(qs []domain.ClarificationQuestion) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestGenerate_UnknownIntentAsksInPriorityOrder(t *testing.T) {
	ctx := &domain.ApplicationContext{Overview: domain.AppOverview{ApplicationName: "x"}}
	qs := questions.Generate(ctx, intent.Derive(ctx), 10)

	assert.Equal(t, []string{
		"availability_requirement",
		"compliance_requirements",
		"cost_priority",
		"runtime_model",
		"workload_domain",
	}, ids(qs))
	for _, q := range qs {
		assert.True(t, q.Required, q.ID)
		assert.Empty(t, q.CurrentValue, q.ID)
		assert.NotEmpty(t, q.Options, q.ID)
	}
}

func TestGenerate_CapsAtLimit(t *testing.T) {
	ctx := &domain.ApplicationContext{Overview: domain.AppOverview{ApplicationName: "x"}}
	in := intent.Derive(ctx)

	assert.Len(t, questions.Generate(ctx, in, 2), 2)
	assert.Len(t, questions.Generate(ctx, in, 0), questions.DefaultMax)
	assert.Equal(t, []string{"availability_requirement", "compliance_requirements"}, ids(questions.Generate(ctx, in, 2)))
}

func TestGenerate_SkipsFirmDimensions(t *testing.T) {
	in := domain.ArchitecturalIntent{
		Availability: domain.IntentSignal{Value: "zone_redundant", Confidence: domain.ConfidenceMedium, Source: domain.SourceDerived},
		Compliance:   domain.IntentSignal{Value: "enterprise", Confidence: domain.ConfidenceLow, Source: domain.SourceDerived},
		Cost:         domain.UnknownSignal(),
		Runtime:      domain.IntentSignal{Value: "microservices", Confidence: domain.ConfidenceHigh, Source: domain.SourceDerived},
		Domain:       domain.IntentSignal{Value: "web", Confidence: domain.ConfidenceMedium, Source: domain.SourceDerived},
	}
	qs := questions.Generate(webApp(), in, 4)

	require.Equal(t, []string{"compliance_requirements", "cost_priority"}, ids(qs))
	assert.Equal(t, "enterprise", qs[0].CurrentValue)
	assert.False(t, qs[0].Required)
	assert.True(t, qs[1].Required)
	assert.Equal(t, domain.DimensionCost, qs[1].Dimension)
}

func TestGenerate_SkipsUserAnsweredDimensions(t *testing.T) {
	ctx := &domain.ApplicationContext{Overview: domain.AppOverview{ApplicationName: "x"}}
	in := questions.ApplyAnswers(ctx, intent.Derive(ctx), map[string]string{
		"availability_requirement": "single_region",
	})
	qs := questions.Generate(ctx, in, 10)
	assert.NotContains(t, ids(qs), "availability_requirement")
	assert.Len(t, qs, 4)
}

func TestApplyAnswers_SetsUserSignal(t *testing.T) {
	ctx := webApp()
	base := intent.Derive(ctx)
	out := questions.ApplyAnswers(ctx, base, map[string]string{
		"compliance_requirements": " Highly_Regulated ",
	})

	assert.Equal(t, "highly_regulated", out.Compliance.Value)
	assert.Equal(t, domain.SourceUser, out.Compliance.Source)
	assert.Equal(t, domain.ConfidenceHigh, out.Compliance.Confidence)
	assert.True(t, out.Compliance.Mandatory())

	// untouched dimensions keep their values
	assert.Equal(t, base.Availability, out.Availability)
	assert.Equal(t, base.Cost, out.Cost)
	assert.Equal(t, base.Runtime, out.Runtime)
	assert.Equal(t, base.Domain, out.Domain)
}

func TestApplyAnswers_IsIdempotent(t *testing.T) {
	ctx := webApp()
	answers := map[string]string{
		"availability_requirement": "multi_region_active_active",
		"cost_priority":            "not-a-choice",
		"favourite_colour":         "blue",
	}
	once := questions.ApplyAnswers(ctx, intent.Derive(ctx), answers)
	twice := questions.ApplyAnswers(ctx, once, answers)
	assert.Equal(t, once, twice)
}

func TestApplyAnswers_InvalidValueFallsBackToDerivation(t *testing.T) {
	ctx := webApp()
	base := intent.Derive(ctx)
	out := questions.ApplyAnswers(ctx, base, map[string]string{"cost_priority": "cheap please"})
	assert.Equal(t, intent.DeriveDimension(ctx, domain.DimensionCost), out.Cost)
	assert.NotEqual(t, domain.SourceUser, out.Cost.Source)
}

func TestApplyAnswers_IgnoresUnknownKeys(t *testing.T) {
	ctx := webApp()
	base := intent.Derive(ctx)
	out := questions.ApplyAnswers(ctx, base, map[string]string{"favourite_colour": "blue"})
	assert.Equal(t, base, out)
}

func TestUnknownAnswerKeys(t *testing.T) {
	keys := questions.UnknownAnswerKeys(map[string]string{
		"zeta":          "1",
		"cost_priority": "balanced",
		"alpha":         "2",
	})
	assert.Equal(t, []string{"alpha", "zeta"}, keys)
	assert.Empty(t, questions.UnknownAnswerKeys(nil))
}

func TestInvalidAnswers(t *testing.T) {
	got := questions.InvalidAnswers(map[string]string{
		"workload_domain":          "gaming",
		"availability_requirement": "moon",
		"runtime_model":            "batch",
	})
	assert.Equal(t, []string{"availability_requirement", "workload_domain"}, got)
}

func TestIDs_MatchGeneratedQuestions(t *testing.T) {
	ctx := &domain.ApplicationContext{Overview: domain.AppOverview{ApplicationName: "x"}}
	assert.Equal(t, questions.IDs(), ids(questions.Generate(ctx, intent.Derive(ctx), 10)))
}
