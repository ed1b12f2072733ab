package normalize

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/archscore/archscore/internal/domain"
)

const modResultsKey = "App Mod results"

// wireDocument mirrors the App Cat export, including its field spellings.
type wireDocument struct {
	AppOverview      []wireOverview      `json:"app_overview"`
	Technologies     looseStrings        `json:"detected_technology_running"`
	ApprovedServices []map[string]string `json:"app_approved_azure_services"`
	Servers          []wireServer        `json:"server_details"`
	ModResults       []wireModernization `json:"App Mod results"`
	UserAnswers      map[string]string   `json:"user_answers"`
}

type wireOverview struct {
	Application             string       `json:"application"`
	AppType                 string       `json:"app_type"`
	BusinessCrtiticality    string       `json:"business_crtiticality"`
	BusinessCriticality     string       `json:"business_criticality"`
	Treatment               string       `json:"treatment"`
	CostPriority            string       `json:"cost_priority"`
	BudgetConstraint        string       `json:"budget_constraint"`
	ComplianceRequirements  looseStrings `json:"compliance_requirements"`
	AvailabilityRequirement string       `json:"availability_requirement"`
}

type wireServer struct {
	Machine            string       `json:"machine"`
	Environment        string       `json:"environment"`
	OperatingSystem    string       `json:"OperatingSystem"`
	IPAddress          looseStrings `json:"ip_address"`
	StorageGB          looseFloat   `json:"StorageGB"`
	MemoryGB           looseFloat   `json:"MemoryGB"`
	Cores              looseFloat   `json:"Cores"`
	CPUUsage           looseFloat   `json:"CPUUsage"`
	MemoryUsage        looseFloat   `json:"MemoryUsage"`
	DiskReadOpsPersec  looseFloat   `json:"DiskReadOpsPersec"`
	DiskWriteOpsPerSec looseFloat   `json:"DiskWriteOpsPerSec"`
	NetworkInMBPS      looseFloat   `json:"NetworkInMBPS"`
	NetworkOutMBPS     looseFloat   `json:"NetworkOutMBPS"`
	StandardSSDDisks   looseFloat   `json:"StandardSSDDisks"`
	StandardHDDDisks   looseFloat   `json:"StandardHDDDisks"`
	PremiumDisks       looseFloat   `json:"PremiumDisks"`
	AzureVMReadiness   string       `json:"AzureVMReadiness"`
	ReadinessIssues    string       `json:"AzureReadinessIssues"`
	MigrationStrategy  string       `json:"migration_strategy"`
	TreatmentOption    string       `json:"treatment_option"`
	DetectedCOTS       looseStrings `json:"detected_COTS"`
}

type wireModernization struct {
	Technology         string            `json:"technology"`
	Summary            map[string]any    `json:"summary"`
	Findings           []domain.Finding  `json:"findings"`
	Compatibility      map[string]string `json:"compatibility"`
	RecommendedTargets looseStrings      `json:"recommended_targets"`
	Blockers           looseStrings      `json:"blockers"`
}

func (w wireDocument) toDomain() *domain.ApplicationContext {
	o := w.AppOverview[0]
	criticality := o.BusinessCrtiticality
	if criticality == "" {
		criticality = o.BusinessCriticality
	}

	ctx := &domain.ApplicationContext{
		Overview: domain.AppOverview{
			ApplicationName:         strings.TrimSpace(o.Application),
			AppType:                 strings.TrimSpace(o.AppType),
			BusinessCriticality:     strings.TrimSpace(criticality),
			Treatment:               strings.ToLower(strings.TrimSpace(o.Treatment)),
			CostPriority:            strings.TrimSpace(o.CostPriority),
			BudgetConstraint:        strings.TrimSpace(o.BudgetConstraint),
			ComplianceRequirements:  []string(o.ComplianceRequirements),
			AvailabilityRequirement: strings.TrimSpace(o.AvailabilityRequirement),
		},
		DetectedTechnologies: []string(w.Technologies),
		UserAnswers:          w.UserAnswers,
	}

	if len(w.ApprovedServices) > 0 {
		ctx.ApprovedServices = make(map[string]string)
		for _, m := range w.ApprovedServices {
			for tech, svc := range m {
				ctx.ApprovedServices[tech] = svc
			}
		}
	}

	ctx.Servers = make([]domain.ServerDetails, 0, len(w.Servers))
	for _, s := range w.Servers {
		ctx.Servers = append(ctx.Servers, domain.ServerDetails{
			Machine:           s.Machine,
			Environment:       s.Environment,
			OperatingSystem:   s.OperatingSystem,
			IPAddresses:       []string(s.IPAddress),
			StorageGB:         float64(s.StorageGB),
			MemoryGB:          float64(s.MemoryGB),
			Cores:             s.Cores.Int(),
			CPUUsage:          float64(s.CPUUsage),
			MemoryUsage:       float64(s.MemoryUsage),
			DiskReadIOPS:      float64(s.DiskReadOpsPersec),
			DiskWriteIOPS:     float64(s.DiskWriteOpsPerSec),
			NetworkInMBps:     float64(s.NetworkInMBPS),
			NetworkOutMBps:    float64(s.NetworkOutMBPS),
			StandardSSDDisks:  s.StandardSSDDisks.Int(),
			StandardHDDDisks:  s.StandardHDDDisks.Int(),
			PremiumDisks:      s.PremiumDisks.Int(),
			VMReadiness:       s.AzureVMReadiness,
			ReadinessIssues:   s.ReadinessIssues,
			MigrationStrategy: s.MigrationStrategy,
			TreatmentOption:   s.TreatmentOption,
			DetectedCOTS:      []string(s.DetectedCOTS),
		})
	}

	for _, m := range w.ModResults {
		ctx.ModernizationResults = append(ctx.ModernizationResults, domain.ModernizationResult{
			Technology:         m.Technology,
			Summary:            m.Summary,
			Findings:           m.Findings,
			Compatibility:      m.Compatibility,
			RecommendedTargets: []string(m.RecommendedTargets),
			Blockers:           []string(m.Blockers),
		})
	}

	return ctx
}

// looseFloat accepts numbers, numeric strings, empty strings and null.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n, ok := toFloat(v)
	if !ok {
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf(0.0)}
	}
	*f = looseFloat(n)
	return nil
}

// Int rounds to the nearest whole number.
func (f looseFloat) Int() int { return int(math.Round(float64(f))) }

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, true
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(t), "%"))
		if s == "" {
			return 0, true
		}
		n, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
		return n, err == nil
	}
	return 0, false
}

// looseStrings accepts a list of strings, a comma separated string, or null.
type looseStrings []string

func (l *looseStrings) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*l = nil
	case string:
		*l = splitList(t)
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf([]string{})}
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		*l = out
	default:
		return &json.UnmarshalTypeError{Value: string(b), Type: reflect.TypeOf([]string{})}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
