package scoring

import (
	"math"
	"slices"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/keywords"
)

// neutral is the sub-score when either side of a comparison is unknown.
const neutral = 0.5

var relatedDomains = [][2]domain.WorkloadDomain{
	{domain.DomainData, domain.DomainAI},
	{domain.DomainWeb, domain.DomainIntegration},
	{domain.DomainInfrastructure, domain.DomainSecurity},
}

// domainMatch: same domain 1, related domain 0.5, otherwise 0.
func domainMatch(e domain.ArchitectureEntry, sig domain.IntentSignal) float64 {
	if !sig.Known() || e.WorkloadDomain == "" {
		return neutral
	}
	want := domain.WorkloadDomain(sig.Value)
	if want == e.WorkloadDomain {
		return 1
	}
	for _, pair := range relatedDomains {
		if (pair[0] == want && pair[1] == e.WorkloadDomain) || (pair[1] == want && pair[0] == e.WorkloadDomain) {
			return 0.5
		}
	}
	return 0
}

var runtimeNeighbors = map[domain.RuntimeModel][]domain.RuntimeModel{
	domain.RuntimeMicroservices: {domain.RuntimeEventDriven, domain.RuntimeAPI},
	domain.RuntimeEventDriven:   {domain.RuntimeMicroservices, domain.RuntimeBatch},
	domain.RuntimeAPI:           {domain.RuntimeMicroservices, domain.RuntimeNTier},
	domain.RuntimeNTier:         {domain.RuntimeAPI, domain.RuntimeMonolith},
	domain.RuntimeBatch:         {domain.RuntimeEventDriven},
	domain.RuntimeMonolith:      {domain.RuntimeNTier},
}

// runtimeMatch: supported 1, neighboring model 0.6, otherwise 0.2.
func runtimeMatch(e domain.ArchitectureEntry, sig domain.IntentSignal) float64 {
	if !sig.Known() || len(e.RuntimeModels) == 0 {
		return neutral
	}
	want := domain.RuntimeModel(sig.Value)
	if slices.Contains(e.RuntimeModels, want) {
		return 1
	}
	for _, n := range runtimeNeighbors[want] {
		if slices.Contains(e.RuntimeModels, n) {
			return 0.6
		}
	}
	return 0.2
}

// availabilityMatch: supported tier 1, only stronger tiers 0.8, weaker tiers
// lose 0.35 per missing tier.
func availabilityMatch(e domain.ArchitectureEntry, sig domain.IntentSignal) float64 {
	want := domain.AvailabilityModel(sig.Value)
	if !sig.Known() || want.Rank() == 0 || len(e.AvailabilityModels) == 0 {
		return neutral
	}
	if slices.Contains(e.AvailabilityModels, want) {
		return 1
	}
	best := e.MaxAvailability().Rank()
	if best > want.Rank() {
		return 0.8
	}
	return math.Max(0, 1-0.35*float64(want.Rank()-best))
}

// costMatch: same profile 1, adjacent 0.6, otherwise 0.2.
func costMatch(e domain.ArchitectureEntry, sig domain.IntentSignal) float64 {
	want := domain.CostProfile(sig.Value)
	if !sig.Known() || want.Rank() == 0 || e.CostProfile.Rank() == 0 {
		return neutral
	}
	switch gap := abs(want.Rank() - e.CostProfile.Rank()); gap {
	case 0:
		return 1
	case 1:
		return 0.6
	}
	return 0.2
}

// securityMatch: same level 1, stricter 0.8, weaker loses 0.4 per level.
func securityMatch(e domain.ArchitectureEntry, sig domain.IntentSignal) float64 {
	want := domain.SecurityLevel(sig.Value)
	if !sig.Known() || want.Rank() == 0 || e.SecurityLevel.Rank() == 0 {
		return neutral
	}
	have := e.SecurityLevel.Rank()
	switch {
	case have == want.Rank():
		return 1
	case have > want.Rank():
		return 0.8
	}
	return math.Max(0, 1-0.4*float64(want.Rank()-have))
}

// technologyOverlap is the fraction of core services the application already
// points at.
func technologyOverlap(e domain.ArchitectureEntry, candidates []string) float64 {
	if len(e.CoreServices) == 0 {
		return neutral
	}
	matched := 0
	for _, svc := range e.CoreServices {
		if matchesService(svc, candidates) {
			matched++
		}
	}
	return float64(matched) / float64(len(e.CoreServices))
}

func matchesService(svc string, candidates []string) bool {
	for _, c := range candidates {
		if keywords.Equal(svc, c) || keywords.Related(svc, c) {
			return true
		}
	}
	return false
}

// qualityBonus: curated 1, ai_enriched 0.75, ai_suggested 0.5, example_only 0.25.
func qualityBonus(q domain.CatalogQuality) float64 {
	return float64(q.Rank()) / float64(len(domain.CatalogQualities))
}

// serviceCandidates collects the cloud services an application is already
// associated with: approved targets, assessed recommendations, supported
// compatibility targets and services implied by detected technologies.
func serviceCandidates(ctx *domain.ApplicationContext) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		key := keywords.Normalize(s)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, k := range sortedKeys(ctx.ApprovedServices) {
		add(ctx.ApprovedServices[k])
	}
	for _, m := range ctx.ModernizationResults {
		for _, t := range m.RecommendedTargets {
			add(t)
		}
		for _, k := range sortedKeys(m.Compatibility) {
			v := m.Compatibility[k]
			if strings.EqualFold(v, domain.CompatibilityFullySupported) || strings.EqualFold(v, domain.CompatibilitySupported) {
				add(k)
			}
		}
	}
	for _, tech := range ctx.Technologies() {
		for _, a := range affinities {
			if _, ok := keywords.FirstMatch([]string{tech}, a.technologies...); ok {
				for _, svc := range a.services {
					add(svc)
				}
			}
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
