package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/archscore/archscore/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the scoring profile looked up in a directory.
const FileName = ".archscore.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .archscore.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .archscore.yaml from dir.
// Returns DefaultScoringConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ScoringConfig, error) {
	cfg, err := l.LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return domain.DefaultScoringConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a scoring profile from an explicit path. A missing file is an error.
func (l *YAMLLoader) LoadFile(path string) (domain.ScoringConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ScoringConfig{}, err
	}

	var cfg domain.ScoringConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	// Validate raw input before defaults fill the gaps.
	if err := cfg.Validate(); err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return cfg.WithDefaults(), nil
}
