// Package normalize turns raw context documents into a canonical
// domain.ApplicationContext. Two document variants are accepted: the App Cat
// export (canonical) and the Dr. Migrate export, which is converted first.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/archscore/archscore/internal/domain"
)

// Variant identifies the shape of a context document.
type Variant string

const (
	VariantAppCat    Variant = "appcat"
	VariantDrMigrate Variant = "drmigrate"
	VariantUnknown   Variant = "unknown"
)

// Required top-level sections of a canonical document.
const (
	sectionOverview     = "app_overview"
	sectionTechnologies = "detected_technology_running"
	sectionServers      = "server_details"
)

var requiredSections = []string{sectionOverview, sectionTechnologies, sectionServers}

// Load parses raw into an ApplicationContext. It returns either a complete
// context or one of FormatError, StructureError, SchemaError.
func Load(raw []byte) (*domain.ApplicationContext, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &domain.FormatError{Err: err}
	}

	obj, err := unwrap(doc)
	if err != nil {
		return nil, err
	}

	if Detect(obj) == VariantDrMigrate {
		obj = FromDrMigrate(obj)
	}

	if err := checkSections(obj); err != nil {
		return nil, err
	}

	return decode(obj)
}

// Detect reports which export produced a document object.
func Detect(obj map[string]any) Variant {
	if _, ok := obj[sectionOverview].([]any); ok {
		if _, t := obj[sectionTechnologies]; t {
			return VariantAppCat
		}
		if _, s := obj[sectionServers]; s {
			return VariantAppCat
		}
	}
	if _, ok := obj["application_overview"].(map[string]any); ok {
		return VariantDrMigrate
	}
	return VariantUnknown
}

// unwrap accepts a single object or a single-element list wrapping one.
func unwrap(doc any) (map[string]any, error) {
	switch v := doc.(type) {
	case map[string]any:
		return v, nil
	case []any:
		switch len(v) {
		case 0:
			return nil, &domain.StructureError{Msg: "context list is empty"}
		case 1:
			obj, ok := v[0].(map[string]any)
			if !ok {
				return nil, &domain.StructureError{Msg: "context list element must be an object"}
			}
			return obj, nil
		default:
			return nil, &domain.StructureError{Msg: fmt.Sprintf("context must describe exactly one application context, found %d", len(v))}
		}
	default:
		return nil, &domain.StructureError{Msg: "context must be an object or a single-element list"}
	}
}

func checkSections(obj map[string]any) error {
	var missing []string
	for _, s := range requiredSections {
		if v, ok := obj[s]; !ok || v == nil {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return &domain.StructureError{Missing: missing}
	}
	return nil
}

func decode(obj map[string]any) (*domain.ApplicationContext, error) {
	if _, ok := obj[modResultsKey]; !ok {
		if alt, ok := obj["app_mod_results"]; ok {
			obj[modResultsKey] = alt
		}
	}

	canonical, err := json.Marshal(obj)
	if err != nil {
		return nil, &domain.SchemaError{Err: err}
	}

	var w wireDocument
	if err := json.NewDecoder(bytes.NewReader(canonical)).Decode(&w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &domain.SchemaError{
				Field: typeErr.Field,
				Msg:   fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
				Err:   err,
			}
		}
		return nil, &domain.SchemaError{Err: err}
	}

	if len(w.AppOverview) == 0 {
		return nil, &domain.SchemaError{Field: sectionOverview, Msg: "must contain one entry"}
	}
	if strings.TrimSpace(w.AppOverview[0].Application) == "" {
		return nil, &domain.SchemaError{Field: sectionOverview + ".application", Msg: "application name is required"}
	}

	return w.toDomain(), nil
}
