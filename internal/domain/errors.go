package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidContext matches every context normalization failure.
	ErrInvalidContext = errors.New("invalid application context")
	// ErrInvalidCatalog matches every catalog loading failure.
	ErrInvalidCatalog = errors.New("invalid architecture catalog")
)

// NotLoadedError is returned when scoring is attempted before a catalog is loaded.
type NotLoadedError struct{}

func (e *NotLoadedError) Error() string { return "architecture catalog not loaded" }

// FormatError means the context document is not valid structured data.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return fmt.Sprintf("context is not valid JSON: %v", e.Err) }
func (e *FormatError) Unwrap() error { return e.Err }
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidContext
}

// StructureError means required top-level sections are absent or the wrapper is wrong.
type StructureError struct {
	Missing []string
	Msg     string
}

func (e *StructureError) Error() string {
	if len(e.Missing) > 0 {
		return "context is missing required sections: " + strings.Join(e.Missing, ", ")
	}
	return "invalid context structure: " + e.Msg
}

func (e *StructureError) Is(target error) bool { return target == ErrInvalidContext }

// SchemaError means a field's type or value is inconsistent with the canonical model.
type SchemaError struct {
	Field string
	Msg   string
	Err   error
}

func (e *SchemaError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field == "" {
		return "context schema error: " + msg
	}
	return fmt.Sprintf("context schema error at %s: %s", e.Field, msg)
}

func (e *SchemaError) Unwrap() error        { return e.Err }
func (e *SchemaError) Is(target error) bool { return target == ErrInvalidContext }

// VersionIncompatibleError means a catalog is older than the supported floor.
type VersionIncompatibleError struct {
	Version string
	Minimum string
}

func (e *VersionIncompatibleError) Error() string {
	return fmt.Sprintf("catalog version %q is below minimum supported version %s", e.Version, e.Minimum)
}

func (e *VersionIncompatibleError) Is(target error) bool { return target == ErrInvalidCatalog }

// ValidationError collects shape violations of a context or catalog document.
type ValidationError struct {
	Subject string
	Issues  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Subject, strings.Join(e.Issues, "; "))
}

func (e *ValidationError) Is(target error) bool {
	switch e.Subject {
	case "catalog":
		return target == ErrInvalidCatalog
	case "context":
		return target == ErrInvalidContext
	}
	return false
}

// ParseVersion reads the major and minor components of a "major.minor[.patch]"
// string. A leading "v" is accepted.
func ParseVersion(v string) (major, minor int, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "v")
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("version %q is not major.minor", v)
	}
	if major, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("version %q has invalid major: %w", v, err)
	}
	if minor, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("version %q has invalid minor: %w", v, err)
	}
	return major, minor, nil
}

// CheckCatalogVersion returns a VersionIncompatibleError when version is
// missing, unparsable, or below minimum.
func CheckCatalogVersion(version, minimum string) error {
	if version == "" {
		version = "0.0.0"
	}
	minMajor, minMinor, err := ParseVersion(minimum)
	if err != nil {
		return fmt.Errorf("minimum catalog version: %w", err)
	}
	major, minor, err := ParseVersion(version)
	if err != nil {
		return &VersionIncompatibleError{Version: version, Minimum: minimum}
	}
	if major < minMajor || (major == minMajor && minor < minMinor) {
		return &VersionIncompatibleError{Version: version, Minimum: minimum}
	}
	return nil
}
