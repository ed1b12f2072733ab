package domain

import "strings"

// ApplicationContext is the canonical description of one application.
// It is built by the normalizer and owned by a single scoring call.
type ApplicationContext struct {
	Overview             AppOverview           `json:"app_overview"`
	DetectedTechnologies []string              `json:"detected_technology_running"`
	ApprovedServices     map[string]string     `json:"app_approved_azure_services,omitempty"`
	Servers              []ServerDetails       `json:"server_details"`
	ModernizationResults []ModernizationResult `json:"app_mod_results,omitempty"`
	UserAnswers          map[string]string     `json:"user_answers,omitempty"`
}

// AppOverview holds the application-level facts of a context.
type AppOverview struct {
	ApplicationName         string   `json:"application"`
	AppType                 string   `json:"app_type,omitempty"`
	BusinessCriticality     string   `json:"business_criticality,omitempty"`
	Treatment               string   `json:"treatment,omitempty"`
	CostPriority            string   `json:"cost_priority,omitempty"`
	BudgetConstraint        string   `json:"budget_constraint,omitempty"`
	ComplianceRequirements  []string `json:"compliance_requirements,omitempty"`
	AvailabilityRequirement string   `json:"availability_requirement,omitempty"`
}

// ServerDetails describes one server or workload record.
type ServerDetails struct {
	Machine           string   `json:"machine,omitempty"`
	Environment       string   `json:"environment,omitempty"`
	OperatingSystem   string   `json:"operating_system,omitempty"`
	IPAddresses       []string `json:"ip_address,omitempty"`
	StorageGB         float64  `json:"storage_gb,omitempty"`
	MemoryGB          float64  `json:"memory_gb,omitempty"`
	Cores             int      `json:"cores,omitempty"`
	CPUUsage          float64  `json:"cpu_usage,omitempty"`
	MemoryUsage       float64  `json:"memory_usage,omitempty"`
	DiskReadIOPS      float64  `json:"disk_read_iops,omitempty"`
	DiskWriteIOPS     float64  `json:"disk_write_iops,omitempty"`
	NetworkInMBps     float64  `json:"network_in_mbps,omitempty"`
	NetworkOutMBps    float64  `json:"network_out_mbps,omitempty"`
	StandardSSDDisks  int      `json:"standard_ssd_disks,omitempty"`
	StandardHDDDisks  int      `json:"standard_hdd_disks,omitempty"`
	PremiumDisks      int      `json:"premium_disks,omitempty"`
	VMReadiness       string   `json:"vm_readiness,omitempty"`
	ReadinessIssues   string   `json:"readiness_issues,omitempty"`
	MigrationStrategy string   `json:"migration_strategy,omitempty"`
	TreatmentOption   string   `json:"treatment_option,omitempty"`
	DetectedCOTS      []string `json:"detected_cots,omitempty"`
}

// IsProduction reports whether the server belongs to a production environment.
func (s ServerDetails) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(s.Environment))
	return env == "production" || env == "prod" || strings.HasPrefix(env, "prod-")
}

// ModernizationResult is one technology assessment from a modernization scan.
type ModernizationResult struct {
	Technology         string            `json:"technology"`
	Summary            map[string]any    `json:"summary,omitempty"`
	Findings           []Finding         `json:"findings,omitempty"`
	Compatibility      map[string]string `json:"compatibility,omitempty"`
	RecommendedTargets []string          `json:"recommended_targets,omitempty"`
	Blockers           []string          `json:"blockers,omitempty"`
}

// ContainerReady reports whether the assessment marked the workload container ready.
func (m ModernizationResult) ContainerReady() bool {
	v, ok := m.Summary["container_ready"]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "yes"
	}
	return false
}

// Finding is a single modernization observation.
type Finding struct {
	Type        string `json:"type"`
	Severity    string `json:"severity,omitempty"`
	Description string `json:"description,omitempty"`
}

// Compatibility values reported by modernization assessments.
const (
	CompatibilityFullySupported = "FullySupported"
	CompatibilitySupported      = "Supported"
	CompatibilityNotSupported   = "NotSupported"
)

// Technologies returns detected technologies, COTS products found on servers,
// and assessed technologies, de-duplicated case-insensitively in first-seen order.
func (c *ApplicationContext) Technologies() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}
	for _, t := range c.DetectedTechnologies {
		add(t)
	}
	for _, s := range c.Servers {
		for _, t := range s.DetectedCOTS {
			add(t)
		}
	}
	for _, m := range c.ModernizationResults {
		add(m.Technology)
	}
	return out
}

// TotalCores sums cores across all servers.
func (c *ApplicationContext) TotalCores() int {
	total := 0
	for _, s := range c.Servers {
		total += s.Cores
	}
	return total
}

// TotalMemoryGB sums memory across all servers.
func (c *ApplicationContext) TotalMemoryGB() float64 {
	var total float64
	for _, s := range c.Servers {
		total += s.MemoryGB
	}
	return total
}

// PeakCPU returns the highest CPU utilisation percentage of any server.
func (c *ApplicationContext) PeakCPU() float64 {
	var peak float64
	for _, s := range c.Servers {
		if s.CPUUsage > peak {
			peak = s.CPUUsage
		}
	}
	return peak
}

// ProductionServers counts servers in a production environment.
func (c *ApplicationContext) ProductionServers() int {
	n := 0
	for _, s := range c.Servers {
		if s.IsProduction() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy so a scoring call can own its context exclusively.
func (c *ApplicationContext) Clone() *ApplicationContext {
	if c == nil {
		return nil
	}
	out := *c
	out.Overview.ComplianceRequirements = cloneStrings(c.Overview.ComplianceRequirements)
	out.DetectedTechnologies = cloneStrings(c.DetectedTechnologies)
	out.ApprovedServices = cloneStringMap(c.ApprovedServices)
	out.UserAnswers = cloneStringMap(c.UserAnswers)

	if c.Servers != nil {
		out.Servers = make([]ServerDetails, len(c.Servers))
		for i, s := range c.Servers {
			s.IPAddresses = cloneStrings(s.IPAddresses)
			s.DetectedCOTS = cloneStrings(s.DetectedCOTS)
			out.Servers[i] = s
		}
	}

	if c.ModernizationResults != nil {
		out.ModernizationResults = make([]ModernizationResult, len(c.ModernizationResults))
		for i, m := range c.ModernizationResults {
			if m.Summary != nil {
				summary := make(map[string]any, len(m.Summary))
				for k, v := range m.Summary {
					summary[k] = v
				}
				m.Summary = summary
			}
			if m.Findings != nil {
				m.Findings = append([]Finding(nil), m.Findings...)
			}
			m.Compatibility = cloneStringMap(m.Compatibility)
			m.RecommendedTargets = cloneStrings(m.RecommendedTargets)
			m.Blockers = cloneStrings(m.Blockers)
			out.ModernizationResults[i] = m
		}
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
