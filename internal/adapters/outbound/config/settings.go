package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces runtime settings in the environment (ARCHSCORE_LOG_LEVEL, ...).
const EnvPrefix = "ARCHSCORE"

// Settings are process-level options. Command-line flags take precedence.
type Settings struct {
	Catalog     string
	Config      string
	LogLevel    string
	LogFormat   string
	HistoryDir  string
	MetricsAddr string
}

var settingDefaults = map[string]string{
	"catalog":      "",
	"config":       "",
	"log_level":    "warn",
	"log_format":   "console",
	"history_dir":  ".",
	"metrics_addr": "",
}

// LoadSettings reads settings from the environment after loading the first
// .env file found among envFiles. Variables already set in the environment
// are never overridden by a .env file.
func LoadSettings(envFiles ...string) Settings {
	loadEnvFile(envFiles)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for k, def := range settingDefaults {
		v.SetDefault(k, def)
	}

	return Settings{
		Catalog:     v.GetString("catalog"),
		Config:      v.GetString("config"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		HistoryDir:  v.GetString("history_dir"),
		MetricsAddr: v.GetString("metrics_addr"),
	}
}

// DefaultEnvFiles are the .env locations tried by the CLI.
func DefaultEnvFiles() []string {
	paths := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".archscore.env"))
	}
	return paths
}

func loadEnvFile(paths []string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			return
		}
	}
}
