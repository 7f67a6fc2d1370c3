// Package config loads layered configuration: struct defaults, an optional
// YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces the environment variables this tool reads.
const envPrefix = "LOLMETRICS_"

// Grid holds the esports data platform settings.
type Grid struct {
	APIKey         string `koanf:"api_key"`
	BaseURL        string `koanf:"base_url"`
	TournamentID   string `koanf:"tournament_id"`
	TournamentName string `koanf:"tournament_name"`
	StartDate      string `koanf:"start_date"`
	RequestDelayMS int    `koanf:"request_delay_ms"`
}

// Config is the full runtime configuration.
type Config struct {
	DBPath   string `koanf:"db_path"`
	LogLevel string `koanf:"log_level"`
	Grid     Grid   `koanf:"grid"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:   filepath.Join(home, ".lolmetrics.db"),
		LogLevel: "info",
		Grid: Grid{
			BaseURL:        "https://api.grid.gg/",
			TournamentName: "HLL",
			RequestDelayMS: 500,
		},
	}
}

// envKeyMap routes the supported environment variables to config keys.
// Unmapped variables under the prefix are ignored rather than guessed at.
var envKeyMap = map[string]string{
	"DB_PATH":               "db_path",
	"LOG_LEVEL":             "log_level",
	"GRID_API_KEY":          "grid.api_key",
	"GRID_BASE_URL":         "grid.base_url",
	"GRID_TOURNAMENT_ID":    "grid.tournament_id",
	"GRID_TOURNAMENT_NAME":  "grid.tournament_name",
	"GRID_START_DATE":       "grid.start_date",
	"GRID_REQUEST_DELAY_MS": "grid.request_delay_ms",
}

// findConfigFile locates a config file: the explicit path if given, then
// $LOLMETRICS_CONFIG, then lolmetrics.yaml in the working directory and the
// user's home. Returns "" when none exists.
func findConfigFile(explicit string) string {
	candidates := []string{explicit, os.Getenv(envPrefix + "CONFIG")}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, "lolmetrics.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".lolmetrics.yaml"))
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Load builds the configuration. path may be empty; a missing file is not
// an error, but an unreadable or malformed one is.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if found := findConfigFile(path); found != "" {
		if err := k.Load(file.Provider(found), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", found, err)
		}
	} else if path != "" {
		return Config{}, fmt.Errorf("config file %s not found", path)
	}

	err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return envKeyMap[key[len(envPrefix):]]
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
