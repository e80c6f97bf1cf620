// Package config loads layoutview settings from defaults, an optional YAML
// file and LAYOUTVIEW_* environment variables, in that order of precedence.
//
// Environment variable names map to keys by dropping the prefix, lowercasing
// and turning "__" into a section separator:
//
//	LAYOUTVIEW_LOG__LEVEL=debug         -> log.level
//	LAYOUTVIEW_ANALYSIS__WORKERS=4      -> analysis.workers
//	LAYOUTVIEW_STORE__SQLITE_PATH=x.db  -> store.sqlite_path
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "LAYOUTVIEW_"

// ConfigPathEnvVar names a config file when no explicit path is given.
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// Config is the complete runtime configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Output   OutputConfig   `koanf:"output"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Store    StoreConfig    `koanf:"store"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// LogConfig configures internal/logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// OutputConfig controls how results are encoded.
type OutputConfig struct {
	// Format is json or yaml.
	Format string `koanf:"format"`
	Pretty bool   `koanf:"pretty"`
}

// AnalysisConfig controls the per-sheet worker pool.
type AnalysisConfig struct {
	Workers int `koanf:"workers"`
}

// StoreConfig enables the SQLite result sink when SQLitePath is set.
type StoreConfig struct {
	SQLitePath string `koanf:"sqlite_path"`
}

// MetricsConfig enables the Prometheus textfile export when Textfile is set.
type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Output: OutputConfig{
			Format: "json",
		},
		Analysis: AnalysisConfig{
			Workers: 1,
		},
	}
}

// Load builds the configuration. path may be empty, in which case the file
// named by LAYOUTVIEW_CONFIG is used if set.
//
// The result is not validated, so callers can layer further overrides on top
// and call Validate once at the end.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps LAYOUTVIEW_LOG__LEVEL to log.level.
func envTransformFunc(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

// Validate checks values that cannot be expressed by types alone.
func (c *Config) Validate() error {
	var errs []error
	switch c.Output.Format {
	case "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output.format must be json or yaml, got %q", c.Output.Format))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}
	if c.Analysis.Workers < 1 {
		errs = append(errs, fmt.Errorf("analysis.workers must be at least 1, got %d", c.Analysis.Workers))
	}
	return errors.Join(errs...)
}
