package domain

import "time"

// CatalogLoader reads and validates an architecture catalog document.
type CatalogLoader interface {
	Load(path string) (*ArchitectureCatalog, error)
}

// ContextReader reads and normalizes an application context document.
type ContextReader interface {
	Read(path string) (*ApplicationContext, error)
}

// ConfigLoader reads scoring configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (ScoringConfig, error)
}

// RunObserver is notified when a scoring call finishes. result is nil on failure.
type RunObserver interface {
	ObserveRun(outcome string, duration time.Duration, result *ScoringResult)
}

// Run outcomes reported to a RunObserver.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// RunHistory persists scoring runs under a root directory.
type RunHistory interface {
	Save(rootPath string, entry RunEntry) error
	Load(rootPath string) ([]RunEntry, error)
}

// CommitResolver resolves the git commit that contains a file.
type CommitResolver interface {
	CommitHash(path string) (string, error)
}

// ResultStore keeps the latest scoring result per application under a root directory.
type ResultStore interface {
	Save(rootPath string, result *ScoringResult) error
	Load(rootPath, application string) (*ScoringResult, error)
}
