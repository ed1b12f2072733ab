package domain

import (
	"fmt"
	"slices"
)

// WorkloadDomain classifies what kind of workload an architecture serves.
type WorkloadDomain string

const (
	DomainWeb            WorkloadDomain = "web"
	DomainData           WorkloadDomain = "data"
	DomainIntegration    WorkloadDomain = "integration"
	DomainSecurity       WorkloadDomain = "security"
	DomainAI             WorkloadDomain = "ai"
	DomainInfrastructure WorkloadDomain = "infrastructure"
)

// WorkloadDomains enumerates all recognized workload domains.
var WorkloadDomains = []WorkloadDomain{
	DomainWeb, DomainData, DomainIntegration, DomainSecurity, DomainAI, DomainInfrastructure,
}

// ArchitectureFamily is the broad family a pattern belongs to.
type ArchitectureFamily string

const (
	FamilyFoundation  ArchitectureFamily = "foundation"
	FamilyIaaS        ArchitectureFamily = "iaas"
	FamilyPaaS        ArchitectureFamily = "paas"
	FamilyCloudNative ArchitectureFamily = "cloud_native"
	FamilyData        ArchitectureFamily = "data"
	FamilyIntegration ArchitectureFamily = "integration"
	FamilySpecialized ArchitectureFamily = "specialized"
)

// ArchitectureFamilies enumerates all recognized families.
var ArchitectureFamilies = []ArchitectureFamily{
	FamilyFoundation, FamilyIaaS, FamilyPaaS, FamilyCloudNative, FamilyData, FamilyIntegration, FamilySpecialized,
}

// RuntimeModel describes how the workload executes.
type RuntimeModel string

const (
	RuntimeMicroservices RuntimeModel = "microservices"
	RuntimeEventDriven   RuntimeModel = "event_driven"
	RuntimeAPI           RuntimeModel = "api"
	RuntimeNTier         RuntimeModel = "n_tier"
	RuntimeBatch         RuntimeModel = "batch"
	RuntimeMonolith      RuntimeModel = "monolith"
)

// RuntimeModels enumerates all recognized runtime models.
var RuntimeModels = []RuntimeModel{
	RuntimeMicroservices, RuntimeEventDriven, RuntimeAPI, RuntimeNTier, RuntimeBatch, RuntimeMonolith,
}

// AvailabilityModel is an availability tier. Tiers are ordered from weakest to strongest.
type AvailabilityModel string

const (
	AvailabilitySingleRegion       AvailabilityModel = "single_region"
	AvailabilityZoneRedundant      AvailabilityModel = "zone_redundant"
	AvailabilityMultiRegionPassive AvailabilityModel = "multi_region_active_passive"
	AvailabilityMultiRegionActive  AvailabilityModel = "multi_region_active_active"
)

// AvailabilityModels lists availability tiers in ascending order.
var AvailabilityModels = []AvailabilityModel{
	AvailabilitySingleRegion, AvailabilityZoneRedundant, AvailabilityMultiRegionPassive, AvailabilityMultiRegionActive,
}

// Rank returns the tier position starting at 1, or 0 if unrecognized.
func (a AvailabilityModel) Rank() int { return slices.Index(AvailabilityModels, a) + 1 }

// SecurityLevel is a security and compliance tier, ordered from weakest to strictest.
type SecurityLevel string

const (
	SecurityBasic           SecurityLevel = "basic"
	SecurityEnterprise      SecurityLevel = "enterprise"
	SecurityRegulated       SecurityLevel = "regulated"
	SecurityHighlyRegulated SecurityLevel = "highly_regulated"
)

// SecurityLevels lists security tiers in ascending order.
var SecurityLevels = []SecurityLevel{
	SecurityBasic, SecurityEnterprise, SecurityRegulated, SecurityHighlyRegulated,
}

// Rank returns the tier position starting at 1, or 0 if unrecognized.
func (s SecurityLevel) Rank() int { return slices.Index(SecurityLevels, s) + 1 }

// CostProfile is a cost posture, ordered from cheapest to most spend-tolerant.
type CostProfile string

const (
	CostMinimized      CostProfile = "cost_minimized"
	CostBalanced       CostProfile = "balanced"
	CostScaleOptimized CostProfile = "scale_optimized"
	CostInnovation     CostProfile = "innovation_first"
)

// CostProfiles lists cost postures in ascending order.
var CostProfiles = []CostProfile{
	CostMinimized, CostBalanced, CostScaleOptimized, CostInnovation,
}

// Rank returns the posture position starting at 1, or 0 if unrecognized.
func (c CostProfile) Rank() int { return slices.Index(CostProfiles, c) + 1 }

// CatalogQuality indicates how an entry was curated.
type CatalogQuality string

const (
	QualityCurated     CatalogQuality = "curated"
	QualityAIEnriched  CatalogQuality = "ai_enriched"
	QualityAISuggested CatalogQuality = "ai_suggested"
	QualityExampleOnly CatalogQuality = "example_only"
)

// CatalogQualities lists quality tiers in ascending order.
var CatalogQualities = []CatalogQuality{
	QualityExampleOnly, QualityAISuggested, QualityAIEnriched, QualityCurated,
}

// Rank returns the tier position starting at 1, or 0 if unrecognized.
func (q CatalogQuality) Rank() int { return slices.Index(CatalogQualities, q) + 1 }

// Treatment is a migration treatment (the 8R model).
type Treatment string

const (
	TreatmentRehost     Treatment = "rehost"
	TreatmentReplatform Treatment = "replatform"
	TreatmentRefactor   Treatment = "refactor"
	TreatmentRebuild    Treatment = "rebuild"
	TreatmentReplace    Treatment = "replace"
	TreatmentRetain     Treatment = "retain"
	TreatmentTolerate   Treatment = "tolerate"
	TreatmentRetire     Treatment = "retire"
)

// Treatments enumerates all recognized treatments.
var Treatments = []Treatment{
	TreatmentRehost, TreatmentReplatform, TreatmentRefactor, TreatmentRebuild,
	TreatmentReplace, TreatmentRetain, TreatmentTolerate, TreatmentRetire,
}

// ArchitectureCatalog is a versioned, read-only set of architecture patterns.
type ArchitectureCatalog struct {
	Version       string              `json:"version"`
	GeneratedAt   string              `json:"generated_at,omitempty"`
	SourceRepo    string              `json:"source_repo,omitempty"`
	SourceCommit  string              `json:"source_commit,omitempty"`
	Architectures []ArchitectureEntry `json:"architectures"`
}

// ArchitectureEntry is one candidate reference architecture.
type ArchitectureEntry struct {
	ID                       string              `json:"id"`
	Name                     string              `json:"name"`
	PatternName              string              `json:"pattern_name,omitempty"`
	Description              string              `json:"description,omitempty"`
	WorkloadDomain           WorkloadDomain      `json:"workload_domain,omitempty"`
	Family                   ArchitectureFamily  `json:"family,omitempty"`
	RuntimeModels            []RuntimeModel      `json:"runtime_models,omitempty"`
	AvailabilityModels       []AvailabilityModel `json:"availability_models,omitempty"`
	SecurityLevel            SecurityLevel       `json:"security_level,omitempty"`
	CostProfile              CostProfile         `json:"cost_profile,omitempty"`
	CoreServices             []string            `json:"core_services,omitempty"`
	SupportingServices       []string            `json:"supporting_services,omitempty"`
	ComplianceGates          []string            `json:"compliance_gates,omitempty"`
	RequiredTechnologies     []string            `json:"required_technologies,omitempty"`
	IncompatibleTechnologies []string            `json:"incompatible_technologies,omitempty"`
	SupportedTreatments      []Treatment         `json:"supported_treatments,omitempty"`
	SLOTarget                string              `json:"slo_target,omitempty"`
	CatalogQuality           CatalogQuality      `json:"catalog_quality"`
	DiagramURL               string              `json:"diagram_url,omitempty"`
	LearnURL                 string              `json:"learn_url,omitempty"`
	BrowseTags               []string            `json:"browse_tags,omitempty"`
}

// DisplayPattern returns the pattern name, falling back to the entry name.
func (e ArchitectureEntry) DisplayPattern() string {
	if e.PatternName != "" {
		return e.PatternName
	}
	return e.Name
}

// MaxAvailability returns the strongest availability tier the entry supports.
func (e ArchitectureEntry) MaxAvailability() AvailabilityModel {
	var best AvailabilityModel
	for _, a := range e.AvailabilityModels {
		if a.Rank() > best.Rank() {
			best = a
		}
	}
	return best
}

// Validate checks entry identity and classification tags. Empty tags are allowed.
func (c *ArchitectureCatalog) Validate() []string {
	var issues []string
	seen := make(map[string]bool)
	for i, e := range c.Architectures {
		where := fmt.Sprintf("architectures[%d]", i)
		if e.ID == "" {
			issues = append(issues, where+": id is required")
		} else if seen[e.ID] {
			issues = append(issues, fmt.Sprintf("%s: duplicate id %q", where, e.ID))
		}
		seen[e.ID] = true

		if e.WorkloadDomain != "" && !slices.Contains(WorkloadDomains, e.WorkloadDomain) {
			issues = append(issues, fmt.Sprintf("%s: unknown workload_domain %q", where, e.WorkloadDomain))
		}
		if e.Family != "" && !slices.Contains(ArchitectureFamilies, e.Family) {
			issues = append(issues, fmt.Sprintf("%s: unknown family %q", where, e.Family))
		}
		for _, r := range e.RuntimeModels {
			if !slices.Contains(RuntimeModels, r) {
				issues = append(issues, fmt.Sprintf("%s: unknown runtime model %q", where, r))
			}
		}
		for _, a := range e.AvailabilityModels {
			if a.Rank() == 0 {
				issues = append(issues, fmt.Sprintf("%s: unknown availability model %q", where, a))
			}
		}
		if e.SecurityLevel != "" && e.SecurityLevel.Rank() == 0 {
			issues = append(issues, fmt.Sprintf("%s: unknown security_level %q", where, e.SecurityLevel))
		}
		if e.CostProfile != "" && e.CostProfile.Rank() == 0 {
			issues = append(issues, fmt.Sprintf("%s: unknown cost_profile %q", where, e.CostProfile))
		}
		if e.CatalogQuality.Rank() == 0 {
			issues = append(issues, fmt.Sprintf("%s: unknown catalog_quality %q", where, e.CatalogQuality))
		}
		for _, t := range e.SupportedTreatments {
			if !slices.Contains(Treatments, t) {
				issues = append(issues, fmt.Sprintf("%s: unknown treatment %q", where, t))
			}
		}
	}
	return issues
}
