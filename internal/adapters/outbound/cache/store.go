package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/archscore/archscore/internal/domain"
)

// Store is a file-based implementation of domain.ResultStore. It keeps the
// latest result for each application so reports can be re-rendered without
// scoring again.
type Store struct{}

// New creates a new file-based result store.
func New() *Store {
	return &Store{}
}

// Load reads the latest result for application. Returns (nil, nil) if none exists.
func (s *Store) Load(rootPath, application string) (*domain.ScoringResult, error) {
	data, err := os.ReadFile(resultPath(rootPath, application))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // nothing scored yet is not an error
		}
		return nil, err
	}

	var res domain.ScoringResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Save writes result to disk, creating directories as needed.
func (s *Store) Save(rootPath string, result *domain.ScoringResult) error {
	if err := os.MkdirAll(cacheDir(rootPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(resultPath(rootPath, result.ApplicationName), data, 0644)
}

// Invalidate removes the stored result for application.
func (s *Store) Invalidate(rootPath, application string) error {
	if err := os.Remove(resultPath(rootPath, application)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func cacheDir(rootPath string) string {
	return filepath.Join(rootPath, ".archscore", "results")
}

func resultPath(rootPath, application string) string {
	return filepath.Join(cacheDir(rootPath), slug(application)+".json")
}

// slug turns an application name into a safe file name.
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "unnamed"
	}
	return out
}
