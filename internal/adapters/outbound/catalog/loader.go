// Package catalog loads architecture catalogs from JSON or YAML files.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/archscore/archscore/internal/domain"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON []byte

// FileLoader implements domain.CatalogLoader for files on disk.
type FileLoader struct {
	minVersion string
	schema     *gojsonschema.Schema
}

// New creates a loader that rejects catalogs older than minVersion.
func New(minVersion string) *FileLoader {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("catalog schema: %v", err))
	}
	if minVersion == "" {
		minVersion = domain.DefaultScoringConfig().MinCatalogVersion
	}
	return &FileLoader{minVersion: minVersion, schema: schema}
}

// Load reads path, checks the version floor, validates the document shape and
// every entry, and returns the decoded catalog.
func (l *FileLoader) Load(path string) (*domain.ArchitectureCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return l.Parse(data, isYAML(path))
}

// Parse decodes a catalog document. YAML is accepted when asYAML is set.
func (l *FileLoader) Parse(data []byte, asYAML bool) (*domain.ArchitectureCatalog, error) {
	doc, err := decode(data, asYAML)
	if err != nil {
		return nil, &domain.ValidationError{Subject: "catalog", Issues: []string{err.Error()}}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &domain.ValidationError{Subject: "catalog", Issues: []string{"document must be an object"}}
	}

	// 1. Version floor before anything else
	version := versionString(obj["version"])
	if err := domain.CheckCatalogVersion(version, l.minVersion); err != nil {
		return nil, err
	}
	obj["version"] = version

	// 2. Document shape
	if issues, err := l.validateShape(obj); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	} else if len(issues) > 0 {
		return nil, &domain.ValidationError{Subject: "catalog", Issues: issues}
	}

	// 3. Typed decode and entry checks
	coerceSLOTargets(obj)
	normalized, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	var cat domain.ArchitectureCatalog
	if err := json.Unmarshal(normalized, &cat); err != nil {
		return nil, &domain.ValidationError{Subject: "catalog", Issues: []string{err.Error()}}
	}
	if issues := cat.Validate(); len(issues) > 0 {
		return nil, &domain.ValidationError{Subject: "catalog", Issues: issues}
	}
	return &cat, nil
}

func (l *FileLoader) validateShape(doc map[string]any) ([]string, error) {
	result, err := l.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}
	issues := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		issues[i] = desc.String()
	}
	return issues, nil
}

func decode(data []byte, asYAML bool) (any, error) {
	var doc any
	if asYAML {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		if obj, ok := doc.(map[string]any); ok {
			restoreYAMLScalars(data, obj)
		}
		return doc, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("invalid JSON: trailing data after document")
	}
	return doc, nil
}

// yamlScalars captures the source text of scalars that YAML would otherwise
// resolve to floats, such as version 1.10.
type yamlScalars struct {
	Version       yaml.Node `yaml:"version"`
	Architectures []struct {
		SLOTarget yaml.Node `yaml:"slo_target"`
	} `yaml:"architectures"`
}

// restoreYAMLScalars replaces numeric version and slo_target values in obj
// with their literal text. Shape errors are left to schema validation.
func restoreYAMLScalars(data []byte, obj map[string]any) {
	var raw yamlScalars
	_ = yaml.Unmarshal(data, &raw)

	if isNumericScalar(raw.Version) {
		obj["version"] = raw.Version.Value
	}
	entries, _ := obj["architectures"].([]any)
	for i, r := range raw.Architectures {
		if i >= len(entries) || !isNumericScalar(r.SLOTarget) {
			continue
		}
		if entry, ok := entries[i].(map[string]any); ok {
			entry["slo_target"] = r.SLOTarget.Value
		}
	}
}

func isNumericScalar(n yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && (n.Tag == "!!float" || n.Tag == "!!int")
}

// coerceSLOTargets turns numeric slo_target values into strings so that
// "99.95" and 99.95 decode the same way.
func coerceSLOTargets(obj map[string]any) {
	entries, _ := obj["architectures"].([]any)
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if v, ok := entry["slo_target"]; ok {
			if _, isString := v.(string); !isString {
				entry["slo_target"] = scalarString(v)
			}
		}
	}
}

// versionString accepts "1.2" as well as an unquoted YAML/JSON number.
func versionString(v any) string {
	s := scalarString(v)
	if s != "" && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	}
	return ""
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
