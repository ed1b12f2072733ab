package normalize

import (
	"fmt"
	"strings"
)

// FromDrMigrate maps a Dr. Migrate export onto the canonical App Cat shape.
// The mapping is pure: obj is not modified.
func FromDrMigrate(obj map[string]any) map[string]any {
	ao, _ := obj["application_overview"].(map[string]any)

	overview := map[string]any{
		"application":              firstString(ao, "application", "application_name", "app_name"),
		"app_type":                 firstString(ao, "app_type", "application_type"),
		"business_crtiticality":    criticality(ao),
		"treatment":                strings.ToLower(firstString(ao, "assigned_migration_strategy", "treatment")),
		"cost_priority":            firstString(ao, "cost_priority"),
		"budget_constraint":        firstString(ao, "budget_constraint"),
		"compliance_requirements":  compliance(ao),
		"availability_requirement": availability(ao),
	}

	return map[string]any{
		sectionOverview:               []any{overview},
		sectionTechnologies:           technologies(obj, ao),
		"app_approved_azure_services": approvedServices(obj),
		sectionServers:                servers(obj),
	}
}

func criticality(ao map[string]any) string {
	if c := firstString(ao, "business_criticality", "business_crtiticality"); c != "" {
		return c
	}
	if truthy(ao["business_critical"]) {
		return "High"
	}
	return ""
}

func availability(ao map[string]any) string {
	if a := firstString(ao, "availability_requirement"); a != "" {
		return a
	}
	switch {
	case truthy(ao["disaster_recovery"]):
		return "multi_region_active_passive"
	case truthy(ao["high_availability"]):
		return "zone_redundant"
	}
	return ""
}

func compliance(ao map[string]any) []any {
	var out []any
	switch v := ao["compliance_requirements"].(type) {
	case string:
		for _, s := range splitList(v) {
			out = append(out, s)
		}
	case []any:
		out = append(out, v...)
	}
	if truthy(ao["pii_data"]) {
		out = append(out, "PII")
	}
	if out == nil {
		return []any{}
	}
	return out
}

func technologies(obj, ao map[string]any) []any {
	seen := make(map[string]bool)
	out := []any{}
	add := func(s string) {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, item := range list(obj["key_software"]) {
		switch v := item.(type) {
		case string:
			add(v)
		case map[string]any:
			add(firstString(v, "key_software", "name"))
		}
	}
	for _, item := range list(obj["installed_applications"]) {
		if m, ok := item.(map[string]any); ok {
			add(firstString(m, "key_software", "specific_software_detected"))
		}
	}
	for _, item := range list(obj["app_mod_candidates"]) {
		if m, ok := item.(map[string]any); ok {
			add(firstString(m, "app_mod_candidate_technology"))
		}
	}
	for _, field := range []string{"other_tech_stack_components", "non_sql_databases", "detected_app_components"} {
		for _, s := range splitList(firstString(ao, field)) {
			add(s)
		}
	}
	if n, ok := toFloat(ao["sql_server_count"]); ok && n > 0 {
		add("SQL Server")
	}
	return out
}

func approvedServices(obj map[string]any) []any {
	out := []any{}
	for _, item := range list(obj["cloud_server_costs"]) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		target := firstString(m, "assigned_target")
		if target == "" {
			continue
		}
		key := firstString(m, "machine")
		if key == "" {
			key = target
		}
		out = append(out, map[string]any{key: target})
	}
	return out
}

var serverFields = []struct{ from, to string }{
	{"OperatingSystem", "OperatingSystem"},
	{"StorageGB", "StorageGB"},
	{"AllocatedMemoryInGB", "MemoryGB"},
	{"Cores", "Cores"},
	{"CPUUsageInPct", "CPUUsage"},
	{"MemoryUsageInPct", "MemoryUsage"},
	{"DiskReadOpsPerSec", "DiskReadOpsPersec"},
	{"DiskWriteOpsPerSec", "DiskWriteOpsPerSec"},
	{"NetworkInMBPS", "NetworkInMBPS"},
	{"NetworkOutMBPS", "NetworkOutMBPS"},
	{"CloudVMReadiness", "AzureVMReadiness"},
}

func servers(obj map[string]any) []any {
	software := make(map[string][]any)
	for _, item := range list(obj["installed_applications"]) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		machine := firstString(m, "machine")
		if sw := firstString(m, "key_software", "specific_software_detected"); machine != "" && sw != "" {
			software[machine] = append(software[machine], sw)
		}
	}

	out := []any{}
	for _, item := range list(obj["server_overviews"]) {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		machine := firstString(m, "machine", "ServerName")
		s := map[string]any{
			"machine":     machine,
			"environment": firstString(m, "environment"),
		}
		for _, f := range serverFields {
			if v, ok := m[f.from]; ok && v != nil {
				s[f.to] = v
			}
		}
		if cots := software[machine]; len(cots) > 0 {
			s["detected_COTS"] = cots
		}
		out = append(out, s)
	}
	return out
}

func list(v any) []any {
	l, _ := v.([]any)
	return l
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return fmt.Sprint(v)
		}
	}
	return ""
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "y", "true", "1", "high":
			return true
		}
	}
	return false
}
