package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/archscore/archscore/internal/adapters/outbound/cache"
	"github.com/archscore/archscore/internal/adapters/outbound/config"
	"github.com/archscore/archscore/internal/adapters/outbound/gitinfo"
	"github.com/archscore/archscore/internal/adapters/outbound/history"
	"github.com/archscore/archscore/internal/adapters/outbound/logging"
	"github.com/archscore/archscore/internal/application"
	"github.com/archscore/archscore/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errNoCatalog = errors.New("no catalog given (use --catalog or set ARCHSCORE_CATALOG)")

// appEnv carries process settings and the logger for one command run.
type appEnv struct {
	settings config.Settings
	logger   *zap.Logger
}

func newAppEnv(cmd *cobra.Command) *appEnv {
	s := config.LoadSettings(config.DefaultEnvFiles()...)
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		s.LogLevel = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		s.LogFormat = v
	}
	return &appEnv{settings: s, logger: logging.New(s.LogLevel, s.LogFormat)}
}

// catalogPath resolves the catalog from the flag, then the environment.
func (e *appEnv) catalogPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if e.settings.Catalog != "" {
		return e.settings.Catalog, nil
	}
	return "", errNoCatalog
}

// scoringConfig loads an explicit profile, or .archscore.yaml from the
// working directory when none is given.
func (e *appEnv) scoringConfig(flag string) (domain.ScoringConfig, error) {
	path := flag
	if path == "" {
		path = e.settings.Config
	}
	loader := config.New()
	if path != "" {
		cfg, err := loader.LoadFile(path)
		if err != nil {
			return domain.ScoringConfig{}, fmt.Errorf("loading config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := loader.Load(".")
	if err != nil {
		return domain.ScoringConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// record stores the result for `report` and appends a history entry.
// Both are best-effort; failures are logged.
func (e *appEnv) record(catalogPath string, res *domain.ScoringResult) {
	root := e.settings.HistoryDir
	if err := cache.New().Save(root, res); err != nil {
		e.logger.Warn("storing result failed", zap.Error(err))
	}
	svc := application.NewHistoryService(history.New(), gitinfo.New())
	if _, err := svc.Record(root, catalogPath, res); err != nil {
		e.logger.Warn("recording history failed", zap.Error(err))
	}
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
