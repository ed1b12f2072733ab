// Package eligibility applies hard pass/fail constraints to catalog entries
// before they are scored.
package eligibility

import (
	"fmt"
	"sort"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/keywords"
)

// Options tunes the hard constraints.
type Options struct {
	// MinQuality is the lowest catalog quality tier that stays eligible.
	// Empty means every tier is accepted.
	MinQuality domain.CatalogQuality
}

// constraint is one hard check. It returns the reason an entry fails, or ""
// when the entry passes.
type constraint struct {
	Name  string
	Check func(e domain.ArchitectureEntry, in input) string
}

type input struct {
	ctx          *domain.ApplicationContext
	intent       domain.ArchitecturalIntent
	opts         Options
	technologies []string
}

// constraints are evaluated in order; the first failure excludes the entry.
var constraints = []constraint{
	{Name: domain.ConstraintCompliance, Check: checkCompliance},
	{Name: domain.ConstraintAvailability, Check: checkAvailability},
	{Name: domain.ConstraintServiceCompatibility, Check: checkServiceCompatibility},
	{Name: domain.ConstraintCatalogQuality, Check: checkCatalogQuality},
}

// Filter partitions entries into eligible and excluded. Every entry lands in
// exactly one of the two, and both keep catalog order.
func Filter(entries []domain.ArchitectureEntry, ctx *domain.ApplicationContext, in domain.ArchitecturalIntent, opts Options) ([]domain.ArchitectureEntry, []domain.ExcludedArchitecture) {
	state := input{ctx: ctx, intent: in, opts: opts, technologies: ctx.Technologies()}
	eligible := []domain.ArchitectureEntry{}
	excluded := []domain.ExcludedArchitecture{}

	for _, e := range entries {
		name, reason := evaluate(e, state)
		if reason == "" {
			eligible = append(eligible, e)
			continue
		}
		excluded = append(excluded, domain.ExcludedArchitecture{
			ID:         e.ID,
			Name:       e.Name,
			Constraint: name,
			Reasons:    []string{reason},
		})
	}
	return eligible, excluded
}

func evaluate(e domain.ArchitectureEntry, in input) (string, string) {
	for _, c := range constraints {
		if reason := c.Check(e, in); reason != "" {
			return c.Name, reason
		}
	}
	return "", ""
}

func checkCompliance(e domain.ArchitectureEntry, in input) string {
	declared := in.ctx.Overview.ComplianceRequirements
	var missing []string
	for _, gate := range e.ComplianceGates {
		if !satisfies(declared, gate) {
			missing = append(missing, gate)
		}
	}
	if len(missing) > 0 {
		if len(declared) == 0 {
			return fmt.Sprintf("requires %s compliance; application declares no compliance requirements", strings.Join(missing, ", "))
		}
		return fmt.Sprintf("requires %s compliance; application declares %s", strings.Join(missing, ", "), strings.Join(declared, ", "))
	}

	sig := in.intent.Compliance
	if !sig.Firm() || e.SecurityLevel == "" {
		return ""
	}
	required := domain.SecurityLevel(sig.Value)
	if required.Rank() > 0 && e.SecurityLevel.Rank() < required.Rank() {
		return fmt.Sprintf("security level %s is below required %s", e.SecurityLevel, required)
	}
	return ""
}

// complianceAliases maps a folded gate name to declared requirements that imply it.
var complianceAliases = map[string][]string{
	"hipaa":   {"healthcare", "HITECH", "PHI"},
	"pci dss": {"payment card", "cardholder data"},
	"pci":     {"payment card", "cardholder data"},
	"fedramp": {"federal government", "US government"},
	"cjis":    {"criminal justice", "law enforcement"},
}

func satisfies(declared []string, gate string) bool {
	aliases := complianceAliases[keywords.Fold(gate)]
	for _, d := range declared {
		if keywords.Equal(d, gate) || keywords.Related(d, gate) {
			return true
		}
		for _, alias := range aliases {
			if keywords.Related(d, alias) {
				return true
			}
		}
	}
	return false
}

func checkAvailability(e domain.ArchitectureEntry, in input) string {
	sig := in.intent.Availability
	if !sig.Mandatory() || len(e.AvailabilityModels) == 0 {
		return ""
	}
	required := domain.AvailabilityModel(sig.Value)
	if required.Rank() == 0 {
		return ""
	}
	if best := e.MaxAvailability(); best.Rank() < required.Rank() {
		return fmt.Sprintf("supports at most %s; %s is required", best, required)
	}
	return ""
}

func checkServiceCompatibility(e domain.ArchitectureEntry, in input) string {
	for _, m := range in.ctx.ModernizationResults {
		for _, target := range sortedKeys(m.Compatibility) {
			if !strings.EqualFold(m.Compatibility[target], domain.CompatibilityNotSupported) {
				continue
			}
			for _, svc := range e.CoreServices {
				if keywords.Equal(svc, target) {
					return fmt.Sprintf("core service %s is not supported for %s", svc, m.Technology)
				}
			}
		}
	}

	for _, bad := range e.IncompatibleTechnologies {
		if tech, ok := keywords.FirstMatch(in.technologies, bad); ok {
			return fmt.Sprintf("incompatible with detected technology %s", tech)
		}
	}

	if len(e.RequiredTechnologies) > 0 {
		if _, ok := keywords.FirstMatch(in.technologies, e.RequiredTechnologies...); !ok {
			return fmt.Sprintf("requires one of %s; none detected", strings.Join(e.RequiredTechnologies, ", "))
		}
	}
	return ""
}

func checkCatalogQuality(e domain.ArchitectureEntry, in input) string {
	floor := in.opts.MinQuality
	if floor == "" || floor.Rank() == 0 {
		return ""
	}
	if e.CatalogQuality.Rank() < floor.Rank() {
		return fmt.Sprintf("catalog quality %s is below minimum %s", e.CatalogQuality, floor)
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
