package eligibility_test

import (
	"testing"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/eligibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func javaContext() *domain.ApplicationContext {
	return &domain.ApplicationContext{
		Overview:             domain.AppOverview{ApplicationName: "OrderService"},
		DetectedTechnologies: []string{"Java 17", "Spring Boot 3.1", "RabbitMQ", "PostgreSQL 15"},
		ModernizationResults: []domain.ModernizationResult{{
			Technology: "Spring Boot",
			Compatibility: map[string]string{
				"azure_kubernetes_service": domain.CompatibilityFullySupported,
				"azure_functions":          domain.CompatibilityNotSupported,
			},
		}},
	}
}

func entry(id string, mutate func(*domain.ArchitectureEntry)) domain.ArchitectureEntry {
	e := domain.ArchitectureEntry{
		ID:             id,
		Name:           id,
		CatalogQuality: domain.QualityCurated,
	}
	if mutate != nil {
		mutate(&e)
	}
	return e
}

func unknownIntent() domain.ArchitecturalIntent {
	u := domain.UnknownSignal()
	return domain.ArchitecturalIntent{Availability: u, Compliance: u, Cost: u, Runtime: u, Domain: u}
}

func TestFilter_Constraints(t *testing.T) {
	tests := []struct {
		name       string
		ctx        func(*domain.ApplicationContext)
		intent     func(domain.ArchitecturalIntent) domain.ArchitecturalIntent
		entry      func(*domain.ArchitectureEntry)
		opts       eligibility.Options
		constraint string
		reason     string
	}{
		{
			name:       "compliance gate not declared",
			entry:      func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"HIPAA"} },
			constraint: domain.ConstraintCompliance,
			reason:     "requires HIPAA compliance; application declares no compliance requirements",
		},
		{
			name:       "compliance gate declared differently",
			ctx:        func(c *domain.ApplicationContext) { c.Overview.ComplianceRequirements = []string{"GDPR"} },
			entry:      func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"PCI DSS"} },
			constraint: domain.ConstraintCompliance,
			reason:     "requires PCI DSS compliance; application declares GDPR",
		},
		{
			name:       "alias of another gate does not satisfy",
			ctx:        func(c *domain.ApplicationContext) { c.Overview.ComplianceRequirements = []string{"Healthcare"} },
			entry:      func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"FedRAMP"} },
			constraint: domain.ConstraintCompliance,
			reason:     "requires FedRAMP compliance; application declares Healthcare",
		},
		{
			name: "security level below firm compliance tier",
			intent: func(in domain.ArchitecturalIntent) domain.ArchitecturalIntent {
				return in.With(domain.DimensionCompliance, domain.IntentSignal{
					Value: "regulated", Confidence: domain.ConfidenceHigh, Source: domain.SourceExplicit,
				})
			},
			entry:      func(e *domain.ArchitectureEntry) { e.SecurityLevel = domain.SecurityEnterprise },
			constraint: domain.ConstraintCompliance,
			reason:     "security level enterprise is below required regulated",
		},
		{
			name: "mandatory availability not supported",
			intent: func(in domain.ArchitecturalIntent) domain.ArchitecturalIntent {
				return in.With(domain.DimensionAvailability, domain.IntentSignal{
					Value: "multi_region_active_active", Confidence: domain.ConfidenceHigh, Source: domain.SourceUser,
				})
			},
			entry: func(e *domain.ArchitectureEntry) {
				e.AvailabilityModels = []domain.AvailabilityModel{domain.AvailabilitySingleRegion, domain.AvailabilityZoneRedundant}
			},
			constraint: domain.ConstraintAvailability,
			reason:     "supports at most zone_redundant; multi_region_active_active is required",
		},
		{
			name:       "core service marked not supported",
			entry:      func(e *domain.ArchitectureEntry) { e.CoreServices = []string{"Azure Functions", "Azure Storage"} },
			constraint: domain.ConstraintServiceCompatibility,
			reason:     "core service Azure Functions is not supported for Spring Boot",
		},
		{
			name:       "incompatible technology detected",
			entry:      func(e *domain.ArchitectureEntry) { e.IncompatibleTechnologies = []string{"COBOL", "Java"} },
			constraint: domain.ConstraintServiceCompatibility,
			reason:     "incompatible with detected technology Java 17",
		},
		{
			name:       "required technology missing",
			entry:      func(e *domain.ArchitectureEntry) { e.RequiredTechnologies = []string{"COBOL", "CICS"} },
			constraint: domain.ConstraintServiceCompatibility,
			reason:     "requires one of COBOL, CICS; none detected",
		},
		{
			name:       "quality below floor",
			entry:      func(e *domain.ArchitectureEntry) { e.CatalogQuality = domain.QualityExampleOnly },
			opts:       eligibility.Options{MinQuality: domain.QualityAISuggested},
			constraint: domain.ConstraintCatalogQuality,
			reason:     "catalog quality example_only is below minimum ai_suggested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := javaContext()
			if tt.ctx != nil {
				tt.ctx(ctx)
			}
			in := unknownIntent()
			if tt.intent != nil {
				in = tt.intent(in)
			}

			eligible, excluded := eligibility.Filter([]domain.ArchitectureEntry{entry("x", tt.entry)}, ctx, in, tt.opts)

			assert.Empty(t, eligible)
			require.Len(t, excluded, 1)
			assert.Equal(t, "x", excluded[0].ID)
			assert.Equal(t, tt.constraint, excluded[0].Constraint)
			assert.Equal(t, []string{tt.reason}, excluded[0].Reasons)
		})
	}
}

func TestFilter_PassingEntries(t *testing.T) {
	tests := []struct {
		name   string
		ctx    func(*domain.ApplicationContext)
		intent func(domain.ArchitecturalIntent) domain.ArchitecturalIntent
		entry  func(*domain.ArchitectureEntry)
	}{
		{
			name:  "no constraints declared",
			entry: nil,
		},
		{
			name:  "compliance gate declared",
			ctx:   func(c *domain.ApplicationContext) { c.Overview.ComplianceRequirements = []string{"PCI DSS v4"} },
			entry: func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"PCI DSS"} },
		},
		{
			name:  "healthcare implies HIPAA gate",
			ctx:   func(c *domain.ApplicationContext) { c.Overview.ComplianceRequirements = []string{"Healthcare"} },
			entry: func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"HIPAA"} },
		},
		{
			name:  "cardholder data implies PCI DSS gate",
			ctx:   func(c *domain.ApplicationContext) { c.Overview.ComplianceRequirements = []string{"Stores cardholder data"} },
			entry: func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"PCI-DSS"} },
		},
		{
			name: "low confidence tier does not gate",
			intent: func(in domain.ArchitecturalIntent) domain.ArchitecturalIntent {
				return in.With(domain.DimensionCompliance, domain.IntentSignal{
					Value: "highly_regulated", Confidence: domain.ConfidenceLow, Source: domain.SourceDerived,
				})
			},
			entry: func(e *domain.ArchitectureEntry) { e.SecurityLevel = domain.SecurityBasic },
		},
		{
			name: "derived availability does not gate",
			intent: func(in domain.ArchitecturalIntent) domain.ArchitecturalIntent {
				return in.With(domain.DimensionAvailability, domain.IntentSignal{
					Value: "multi_region_active_active", Confidence: domain.ConfidenceMedium, Source: domain.SourceDerived,
				})
			},
			entry: func(e *domain.ArchitectureEntry) {
				e.AvailabilityModels = []domain.AvailabilityModel{domain.AvailabilitySingleRegion}
			},
		},
		{
			name: "mandatory availability met",
			intent: func(in domain.ArchitecturalIntent) domain.ArchitecturalIntent {
				return in.With(domain.DimensionAvailability, domain.IntentSignal{
					Value: "zone_redundant", Confidence: domain.ConfidenceHigh, Source: domain.SourceExplicit,
				})
			},
			entry: func(e *domain.ArchitectureEntry) {
				e.AvailabilityModels = []domain.AvailabilityModel{domain.AvailabilityMultiRegionPassive}
			},
		},
		{
			name:  "required technology present",
			entry: func(e *domain.ArchitectureEntry) { e.RequiredTechnologies = []string{"Spring Boot"} },
		},
		{
			name:  "supported core service",
			entry: func(e *domain.ArchitectureEntry) { e.CoreServices = []string{"Azure Kubernetes Service"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := javaContext()
			if tt.ctx != nil {
				tt.ctx(ctx)
			}
			in := unknownIntent()
			if tt.intent != nil {
				in = tt.intent(in)
			}
			eligible, excluded := eligibility.Filter([]domain.ArchitectureEntry{entry("x", tt.entry)}, ctx, in, eligibility.Options{MinQuality: domain.QualityCurated})
			assert.Len(t, eligible, 1)
			assert.Empty(t, excluded)
		})
	}
}

func TestFilter_FirstFailureWins(t *testing.T) {
	e := entry("x", func(e *domain.ArchitectureEntry) {
		e.ComplianceGates = []string{"HIPAA"}
		e.RequiredTechnologies = []string{"COBOL"}
		e.CatalogQuality = domain.QualityExampleOnly
	})
	_, excluded := eligibility.Filter([]domain.ArchitectureEntry{e}, javaContext(), unknownIntent(), eligibility.Options{MinQuality: domain.QualityCurated})

	require.Len(t, excluded, 1)
	assert.Equal(t, domain.ConstraintCompliance, excluded[0].Constraint)
	assert.Len(t, excluded[0].Reasons, 1)
}

func TestFilter_PartitionKeepsCatalogOrder(t *testing.T) {
	entries := []domain.ArchitectureEntry{
		entry("a", nil),
		entry("b", func(e *domain.ArchitectureEntry) { e.RequiredTechnologies = []string{"COBOL"} }),
		entry("c", nil),
		entry("d", func(e *domain.ArchitectureEntry) { e.ComplianceGates = []string{"FedRAMP"} }),
		entry("e", nil),
	}
	eligible, excluded := eligibility.Filter(entries, javaContext(), unknownIntent(), eligibility.Options{})

	var eligibleIDs, excludedIDs []string
	for _, e := range eligible {
		eligibleIDs = append(eligibleIDs, e.ID)
	}
	for _, x := range excluded {
		excludedIDs = append(excludedIDs, x.ID)
	}
	assert.Equal(t, []string{"a", "c", "e"}, eligibleIDs)
	assert.Equal(t, []string{"b", "d"}, excludedIDs)
	assert.Equal(t, len(entries), len(eligible)+len(excluded))
}

func TestFilter_EmptyInput(t *testing.T) {
	eligible, excluded := eligibility.Filter(nil, javaContext(), unknownIntent(), eligibility.Options{})
	assert.NotNil(t, eligible)
	assert.NotNil(t, excluded)
	assert.Empty(t, eligible)
	assert.Empty(t, excluded)
}
