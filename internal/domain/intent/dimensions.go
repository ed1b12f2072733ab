package intent

import (
	"fmt"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/archscore/archscore/internal/domain/keywords"
)

// ParseAvailability maps free-text availability requirements onto a tier.
func ParseAvailability(s string) (domain.AvailabilityModel, bool) {
	n := keywords.Fold(s)
	for _, a := range domain.AvailabilityModels {
		if n == keywords.Fold(string(a)) {
			return a, true
		}
	}
	switch {
	case n == "":
		return "", false
	case strings.Contains(n, "active active"):
		return domain.AvailabilityMultiRegionActive, true
	case strings.Contains(n, "multi region"), strings.Contains(n, "disaster recovery"), strings.Contains(n, "geo"):
		return domain.AvailabilityMultiRegionPassive, true
	case strings.Contains(n, "zone"), strings.Contains(n, "high availability"), n == "high", strings.Contains(n, "99 99"):
		return domain.AvailabilityZoneRedundant, true
	case strings.Contains(n, "single"), strings.Contains(n, "standard"), n == "low", n == "basic":
		return domain.AvailabilitySingleRegion, true
	}
	return "", false
}

var availabilityRules = []Rule{
	{Name: "explicit requirement", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		a, ok := ParseAvailability(ctx.Overview.AvailabilityRequirement)
		if !ok {
			return domain.IntentSignal{}, false
		}
		return explicit(string(a), "availability requirement "+ctx.Overview.AvailabilityRequirement), true
	}},
	{Name: "business criticality", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		why := "business criticality " + ctx.Overview.BusinessCriticality
		switch criticalityLevel(ctx) {
		case "critical":
			return derived(string(domain.AvailabilityMultiRegionPassive), domain.ConfidenceMedium, why), true
		case "high":
			return derived(string(domain.AvailabilityZoneRedundant), domain.ConfidenceMedium, why), true
		case "medium", "low":
			return derived(string(domain.AvailabilitySingleRegion), domain.ConfidenceLow, why), true
		}
		return domain.IntentSignal{}, false
	}},
	{Name: "production footprint", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		if n := ctx.ProductionServers(); n >= 2 {
			return derived(string(domain.AvailabilityZoneRedundant), domain.ConfidenceLow,
				fmt.Sprintf("%d production servers", n)), true
		}
		return domain.IntentSignal{}, false
	}},
}

var (
	highlyRegulatedScopes = []string{"HIPAA", "HITECH", "PCI", "PCI DSS", "FedRAMP", "ITAR", "CJIS"}
	regulatedScopes       = []string{"GDPR", "SOC 2", "SOC2", "ISO 27001", "ISO27001", "PII", "SOX", "CCPA", "NIST"}
	noneScopes            = []string{"none", "n/a", "na", "not applicable"}
)

// ComplianceTier classifies declared compliance requirements.
func ComplianceTier(reqs []string) (domain.SecurityLevel, bool) {
	if len(reqs) == 0 {
		return "", false
	}
	best := domain.SecurityBasic
	for _, r := range reqs {
		tier := domain.SecurityEnterprise
		switch {
		case matchesAny(r, highlyRegulatedScopes):
			tier = domain.SecurityHighlyRegulated
		case matchesAny(r, regulatedScopes):
			tier = domain.SecurityRegulated
		case matchesAny(r, noneScopes):
			tier = domain.SecurityBasic
		}
		if tier.Rank() > best.Rank() {
			best = tier
		}
	}
	return best, true
}

func matchesAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if keywords.ContainsPhrase(s, p) || keywords.Equal(s, p) {
			return true
		}
	}
	return false
}

var complianceRules = []Rule{
	{Name: "declared requirements", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		tier, ok := ComplianceTier(ctx.Overview.ComplianceRequirements)
		if !ok {
			return domain.IntentSignal{}, false
		}
		return explicit(string(tier), "compliance requirements "+strings.Join(ctx.Overview.ComplianceRequirements, ", ")), true
	}},
	{Name: "regulated industry software", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		techs := ctx.Technologies()
		if t, ok := keywords.FirstMatch(techs, "HL7", "FHIR", "Epic", "Cerner", "Meditech"); ok {
			return derived(string(domain.SecurityHighlyRegulated), domain.ConfidenceMedium, "healthcare software "+t), true
		}
		if t, ok := keywords.FirstMatch(techs, "SWIFT", "Temenos", "FIS", "Finastra"); ok {
			return derived(string(domain.SecurityRegulated), domain.ConfidenceMedium, "financial software "+t), true
		}
		return domain.IntentSignal{}, false
	}},
	{Name: "assessment findings", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		for _, m := range ctx.ModernizationResults {
			for _, f := range m.Findings {
				if keywords.ContainsPhrase(f.Type, "compliance") {
					return derived(string(domain.SecurityRegulated), domain.ConfidenceMedium,
						"compliance finding on "+m.Technology), true
				}
			}
		}
		return domain.IntentSignal{}, false
	}},
	{Name: "business criticality", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		switch criticalityLevel(ctx) {
		case "critical", "high":
			return derived(string(domain.SecurityEnterprise), domain.ConfidenceLow,
				"business criticality "+ctx.Overview.BusinessCriticality), true
		}
		return domain.IntentSignal{}, false
	}},
}

// ParseCostProfile maps free-text cost priorities onto a posture.
func ParseCostProfile(s string) (domain.CostProfile, bool) {
	n := keywords.Fold(s)
	for _, c := range domain.CostProfiles {
		if n == keywords.Fold(string(c)) {
			return c, true
		}
	}
	switch {
	case n == "":
		return "", false
	case strings.Contains(n, "innovation"):
		return domain.CostInnovation, true
	case strings.Contains(n, "scale"), strings.Contains(n, "performance"):
		return domain.CostScaleOptimized, true
	case strings.Contains(n, "balance"), n == "medium":
		return domain.CostBalanced, true
	case strings.Contains(n, "cost"), strings.Contains(n, "minim"), strings.Contains(n, "cheap"), n == "low":
		return domain.CostMinimized, true
	}
	return "", false
}

var costRules = []Rule{
	{Name: "explicit priority", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		c, ok := ParseCostProfile(ctx.Overview.CostPriority)
		if !ok {
			return domain.IntentSignal{}, false
		}
		return explicit(string(c), "cost priority "+ctx.Overview.CostPriority), true
	}},
	{Name: "budget constraint", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		b := keywords.Fold(ctx.Overview.BudgetConstraint)
		why := "budget constraint " + ctx.Overview.BudgetConstraint
		switch {
		case b == "":
			return domain.IntentSignal{}, false
		case strings.Contains(b, "minimal"), strings.Contains(b, "tight"), strings.Contains(b, "limited"), b == "low":
			return derived(string(domain.CostMinimized), domain.ConfidenceMedium, why), true
		case strings.Contains(b, "flexible"), strings.Contains(b, "moderate"), b == "medium":
			return derived(string(domain.CostBalanced), domain.ConfidenceMedium, why), true
		case strings.Contains(b, "unlimited"), b == "high":
			return derived(string(domain.CostScaleOptimized), domain.ConfidenceMedium, why), true
		}
		return domain.IntentSignal{}, false
	}},
	{Name: "workload size", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		if len(ctx.Servers) == 0 {
			return domain.IntentSignal{}, false
		}
		cores, mem := ctx.TotalCores(), ctx.TotalMemoryGB()
		switch {
		case cores >= 32 || mem >= 128:
			return derived(string(domain.CostScaleOptimized), domain.ConfidenceLow,
				fmt.Sprintf("%d cores and %.0f GB memory in use", cores, mem)), true
		case cores <= 2 && mem <= 4 && ctx.PeakCPU() < 20:
			return derived(string(domain.CostMinimized), domain.ConfidenceLow,
				fmt.Sprintf("small footprint of %d cores and %.0f GB memory", cores, mem)), true
		}
		return domain.IntentSignal{}, false
	}},
	{Name: "treatment", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		switch domain.Treatment(treatment(ctx)) {
		case domain.TreatmentRehost, domain.TreatmentTolerate, domain.TreatmentRetain:
			return derived(string(domain.CostMinimized), domain.ConfidenceLow, "treatment "+treatment(ctx)), true
		}
		return domain.IntentSignal{}, false
	}},
}

var (
	containerTech   = []string{"Kubernetes", "AKS", "OpenShift", "Docker", "Helm", "Podman", "containerd"}
	messagingTech   = []string{"Kafka", "Event Hubs", "Event Grid", "Service Bus", "RabbitMQ", "ActiveMQ", "IBM MQ", "MQTT", "NATS"}
	batchTech       = []string{"Spark", "Hadoop", "JCL", "Airflow", "Control-M", "CUDA", "Batch"}
	apiTech         = []string{"gRPC", "GraphQL", "REST API", "API Gateway", "Apigee", "API Management"}
	webServers      = []string{"IIS", "Tomcat", "Apache HTTP", "Nginx", "JBoss", "WildFly", "WebLogic", "WebSphere", "Node.js", "Express"}
	databases       = []string{"SQL Server", "Oracle", "MySQL", "PostgreSQL", "DB2", "MariaDB", "MongoDB", "Sybase"}
	legacyMonoliths = []string{"VB6", "Visual Basic 6", "COBOL", "PowerBuilder", "Delphi", "MS Access", "Microsoft Access", "FoxPro"}
)

func runtimeByTech(tech []string, model domain.RuntimeModel, c domain.Confidence, label string) Rule {
	return Rule{Name: label, Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		if t, ok := keywords.FirstMatch(ctx.Technologies(), tech...); ok {
			return derived(string(model), c, label+" "+t), true
		}
		return domain.IntentSignal{}, false
	}}
}

var runtimeRules = []Rule{
	{Name: "application type", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		t := ctx.Overview.AppType
		switch {
		case keywords.ContainsPhrase(t, "microservices"), keywords.ContainsPhrase(t, "microservice"):
			return derived(string(domain.RuntimeMicroservices), domain.ConfidenceHigh, "application type "+t), true
		case keywords.ContainsPhrase(t, "batch"):
			return derived(string(domain.RuntimeBatch), domain.ConfidenceHigh, "application type "+t), true
		case keywords.ContainsPhrase(t, "event driven"):
			return derived(string(domain.RuntimeEventDriven), domain.ConfidenceHigh, "application type "+t), true
		}
		return domain.IntentSignal{}, false
	}},
	{Name: "container readiness", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		if t, ok := keywords.FirstMatch(ctx.Technologies(), containerTech...); ok {
			return derived(string(domain.RuntimeMicroservices), domain.ConfidenceHigh, "container platform "+t), true
		}
		for _, m := range ctx.ModernizationResults {
			if m.ContainerReady() {
				return derived(string(domain.RuntimeMicroservices), domain.ConfidenceMedium,
					m.Technology+" assessed as container ready"), true
			}
		}
		return domain.IntentSignal{}, false
	}},
	runtimeByTech([]string{"Spring Boot", "Spring Cloud", "Dapr", "Micronaut", "Quarkus"}, domain.RuntimeMicroservices, domain.ConfidenceMedium, "microservice framework"),
	runtimeByTech(messagingTech, domain.RuntimeEventDriven, domain.ConfidenceMedium, "messaging"),
	runtimeByTech(batchTech, domain.RuntimeBatch, domain.ConfidenceMedium, "batch processing"),
	runtimeByTech(apiTech, domain.RuntimeAPI, domain.ConfidenceMedium, "API technology"),
	{Name: "web and database tiers", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		techs := ctx.Technologies()
		web, okWeb := keywords.FirstMatch(techs, webServers...)
		db, okDB := keywords.FirstMatch(techs, databases...)
		if okWeb && okDB {
			return derived(string(domain.RuntimeNTier), domain.ConfidenceMedium, "web tier "+web+" with database "+db), true
		}
		return domain.IntentSignal{}, false
	}},
	runtimeByTech(legacyMonoliths, domain.RuntimeMonolith, domain.ConfidenceMedium, "legacy platform"),
	runtimeByTech(webServers, domain.RuntimeNTier, domain.ConfidenceLow, "web server"),
}

func domainByTech(tech []string, d domain.WorkloadDomain, c domain.Confidence, label string) Rule {
	return Rule{Name: label, Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		if t, ok := keywords.FirstMatch(ctx.Technologies(), tech...); ok {
			return derived(string(d), c, label+" "+t), true
		}
		return domain.IntentSignal{}, false
	}}
}

var appTypeDomains = []struct {
	phrases []string
	target  domain.WorkloadDomain
}{
	{[]string{"AI", "ML", "Machine Learning", "Artificial Intelligence"}, domain.DomainAI},
	{[]string{"Data", "Analytics", "Data Warehouse", "ETL", "Reporting", "BI"}, domain.DomainData},
	{[]string{"Integration", "ESB", "Middleware"}, domain.DomainIntegration},
	{[]string{"Security", "Identity"}, domain.DomainSecurity},
	{[]string{"Web", "Portal", "Website", "E-commerce", "eCommerce"}, domain.DomainWeb},
	{[]string{"Infrastructure", "File Server", "Mainframe"}, domain.DomainInfrastructure},
}

var domainRules = []Rule{
	{Name: "application type", Apply: func(ctx *domain.ApplicationContext) (domain.IntentSignal, bool) {
		t := ctx.Overview.AppType
		for _, m := range appTypeDomains {
			if matchesAny(t, m.phrases) {
				return derived(string(m.target), domain.ConfidenceHigh, "application type "+t), true
			}
		}
		return domain.IntentSignal{}, false
	}},
	domainByTech([]string{"PyTorch", "TensorFlow", "MLflow", "scikit-learn", "Azure OpenAI", "Kubeflow"}, domain.DomainAI, domain.ConfidenceMedium, "machine learning stack"),
	domainByTech([]string{"Spark", "Databricks", "Hadoop", "Snowflake", "Informatica", "SSIS", "Teradata"}, domain.DomainData, domain.ConfidenceMedium, "data platform"),
	domainByTech([]string{"BizTalk", "MuleSoft", "TIBCO", "webMethods", "Logic Apps", "Boomi"}, domain.DomainIntegration, domain.ConfidenceMedium, "integration platform"),
	domainByTech([]string{"IIS", "Tomcat", "Nginx", "Apache HTTP", "React", "Angular", "ASP.NET", "Express", "Spring Boot", "Django", "Flask"}, domain.DomainWeb, domain.ConfidenceMedium, "web stack"),
	domainByTech([]string{"COBOL", "CICS", "AS400", "IBM i", "z/OS"}, domain.DomainInfrastructure, domain.ConfidenceLow, "host platform"),
}
