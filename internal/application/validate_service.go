package application

import (
	"errors"
	"fmt"

	"github.com/archscore/archscore/internal/domain"
)

// ValidateService checks input documents without scoring them.
type ValidateService struct {
	catalogs domain.CatalogLoader
	contexts domain.ContextReader
}

// NewValidateService creates a ValidateService with all required dependencies.
func NewValidateService(catalogs domain.CatalogLoader, contexts domain.ContextReader) *ValidateService {
	return &ValidateService{catalogs: catalogs, contexts: contexts}
}

// ValidateCatalog loads the catalog at path and reports every issue found.
// Only I/O failures are returned as errors.
func (s *ValidateService) ValidateCatalog(path string) (*domain.ValidationReport, error) {
	report := &domain.ValidationReport{Path: path, Issues: []string{}, Advisories: []string{}}

	cat, err := s.catalogs.Load(path)
	if err != nil {
		issues, ok := documentIssues(err, domain.ErrInvalidCatalog)
		if !ok {
			return nil, fmt.Errorf("validating catalog: %w", err)
		}
		report.Issues = issues
		return report, nil
	}

	report.Valid = true
	report.Version = cat.Version
	report.Entries = len(cat.Architectures)
	report.Advisories = catalogAdvisories(cat)
	return report, nil
}

// ValidateContext normalizes the context at path and reports the outcome.
func (s *ValidateService) ValidateContext(path string) (*domain.ValidationReport, error) {
	report := &domain.ValidationReport{Path: path, Issues: []string{}, Advisories: []string{}}

	ctx, err := s.contexts.Read(path)
	if err != nil {
		issues, ok := documentIssues(err, domain.ErrInvalidContext)
		if !ok {
			return nil, fmt.Errorf("validating context: %w", err)
		}
		report.Issues = issues
		return report, nil
	}

	report.Valid = true
	if len(ctx.Servers) == 0 {
		report.Advisories = append(report.Advisories, "no server details; sizing and availability rules cannot apply")
	}
	if len(ctx.Technologies()) == 0 {
		report.Advisories = append(report.Advisories, "no detected technologies; runtime and domain will likely be unknown")
	}
	return report, nil
}

// documentIssues turns a document error into issue lines. ok is false when
// err is not about document content.
func documentIssues(err, kind error) ([]string, bool) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return append([]string(nil), verr.Issues...), true
	}
	if errors.Is(err, kind) {
		return []string{err.Error()}, true
	}
	return nil, false
}

func catalogAdvisories(cat *domain.ArchitectureCatalog) []string {
	out := []string{}
	if len(cat.Architectures) == 0 {
		return append(out, "catalog has no architectures")
	}
	for _, e := range cat.Architectures {
		if len(e.CoreServices) == 0 {
			out = append(out, fmt.Sprintf("%s: no core_services; technology overlap will be neutral", e.ID))
		}
		if e.WorkloadDomain == "" || len(e.RuntimeModels) == 0 {
			out = append(out, fmt.Sprintf("%s: missing workload_domain or runtime_models", e.ID))
		}
		if e.CatalogQuality == domain.QualityExampleOnly {
			out = append(out, fmt.Sprintf("%s: example_only quality is excluded by the default floor", e.ID))
		}
	}
	return out
}
