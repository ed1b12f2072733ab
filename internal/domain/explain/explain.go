// Package explain assembles the final scoring result and its summary.
package explain

import (
	"fmt"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/scoring"
)

const (
	maxDrivers = 5
	maxRisks   = 5
	// narrowMargin is the score gap under which the top two are called close.
	narrowMargin = 5
)

// Input is everything one scoring call produced.
type Input struct {
	Context         *domain.ApplicationContext
	Catalog         *domain.ArchitectureCatalog
	Intent          domain.ArchitecturalIntent
	Questions       []domain.ClarificationQuestion
	Recommendations []domain.ArchitectureRecommendation
	Excluded        []domain.ExcludedArchitecture
	EligibleCount   int
	Warnings        []string
	Thresholds      domain.ConfidenceThresholds
	// Limit truncates recommendations after the summary is computed. <= 0 keeps all.
	Limit int
}

// Build assembles a ScoringResult. The summary is computed over the full
// ranked list before truncation.
func Build(in Input) *domain.ScoringResult {
	recs := in.Recommendations
	summary := domain.ResultSummary{
		ConfidenceLevel: confidence(recs, in.Intent, in.Thresholds),
		KeyDrivers:      drivers(in.Intent, recs),
		KeyRisks:        risks(in),
	}
	if len(recs) > 0 {
		summary.PrimaryRecommendation = recs[0].Name
	}
	if in.Limit > 0 && len(recs) > in.Limit {
		recs = recs[:in.Limit]
	}

	res := &domain.ScoringResult{
		ApplicationName:        in.Context.Overview.ApplicationName,
		EligibleCount:          in.EligibleCount,
		Intent:                 in.Intent,
		ClarificationQuestions: nonNil(in.Questions),
		Recommendations:        nonNil(recs),
		Excluded:               nonNil(in.Excluded),
		Summary:                summary,
		Warnings:               append([]string{}, in.Warnings...),
	}
	if in.Catalog != nil {
		res.CatalogVersion = in.Catalog.Version
		res.CatalogArchitectureCount = len(in.Catalog.Architectures)
	}
	return res
}

func confidence(recs []domain.ArchitectureRecommendation, in domain.ArchitecturalIntent, th domain.ConfidenceThresholds) string {
	if len(recs) == 0 {
		return domain.LevelLow
	}
	top := recs[0].LikelihoodScore
	switch {
	case top >= th.High && len(in.UnknownDimensions()) <= 1:
		return domain.LevelHigh
	case top >= th.Medium:
		return domain.LevelMedium
	}
	return domain.LevelLow
}

func drivers(in domain.ArchitecturalIntent, recs []domain.ArchitectureRecommendation) []string {
	out := []string{}
	for _, d := range domain.Dimensions {
		s := in.Signal(d)
		if !s.Firm() {
			continue
		}
		line := fmt.Sprintf("%s: %s", d, s.Value)
		if s.Rationale != "" {
			line += " (" + s.Rationale + ")"
		}
		out = append(out, line)
	}
	if len(recs) > 0 && recs[0].FitSummary != "" {
		out = append(out, recs[0].Name+": "+strings.ToLower(recs[0].FitSummary[:1])+recs[0].FitSummary[1:])
	}
	return truncate(out, maxDrivers)
}

func risks(in Input) []string {
	out := []string{}
	if unknown := in.Intent.UnknownDimensions(); len(unknown) > 0 {
		names := make([]string, len(unknown))
		for i, d := range unknown {
			names[i] = string(d)
		}
		out = append(out, "Could not determine "+strings.Join(names, ", ")+"; answer the clarification questions to refine")
	}
	if in.Context != nil {
		for _, m := range in.Context.ModernizationResults {
			for _, b := range m.Blockers {
				out = append(out, fmt.Sprintf("Modernization blocker for %s: %s", m.Technology, b))
			}
		}
	}
	switch domain.Treatment(in.Intent.Treatment) {
	case domain.TreatmentRetain, domain.TreatmentTolerate, domain.TreatmentRetire:
		out = append(out, fmt.Sprintf("Treatment is %s; a migration architecture may not be needed", in.Intent.Treatment))
	}
	recs := in.Recommendations
	if len(recs) >= 2 && recs[0].LikelihoodScore-recs[1].LikelihoodScore < narrowMargin {
		out = append(out, fmt.Sprintf("%s and %s score within %d points", recs[0].Name, recs[1].Name, narrowMargin))
	}
	if in.EligibleCount == 0 {
		out = append(out, "No catalog architecture passed the hard constraints")
	} else if len(recs) > 0 && recs[0].StruggleSummary != "" {
		out = append(out, recs[0].Name+": "+strings.ToLower(recs[0].StruggleSummary[:1])+recs[0].StruggleSummary[1:])
	}
	return truncate(out, maxRisks)
}

// Breakdown renders a recommendation's sub-scores in reporting order.
func Breakdown(r domain.ArchitectureRecommendation) []string {
	out := make([]string, 0, len(domain.ScoreDimensions))
	for _, dim := range domain.ScoreDimensions {
		if v, ok := r.Breakdown[dim]; ok {
			out = append(out, fmt.Sprintf("%s %.2f", scoring.Label(dim), v))
		}
	}
	return out
}

func truncate(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
