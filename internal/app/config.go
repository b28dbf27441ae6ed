package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v6"
)

// logLevels maps the accepted level names onto slog levels. The CLI rejects
// anything else up front; NewConfig re-checks because environment overrides
// bypass the flags.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds all the necessary configuration for an App instance to run.
// Environment variables take precedence over the values passed in (normally
// the flag values), so deployments can steer logging without touching the
// invocation.
type Config struct {
	// ScriptPath is a single .hcl script file or a directory of them.
	ScriptPath string
	// CatalogPath holds the block-type manifests (.hcl files).
	CatalogPath string `env:"BLOCKFORGE_CATALOG_PATH"`
	// OutputPath receives the generated source; empty means stdout.
	OutputPath string

	LogFormat string `env:"BLOCKFORGE_LOG_FORMAT"`
	LogLevel  string `env:"BLOCKFORGE_LOG_LEVEL"`
}

// NewConfig validates a Config and applies environment overrides.
func NewConfig(cfg Config) (*Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment configuration: %w", err)
	}

	if cfg.ScriptPath == "" {
		return nil, errors.New("ScriptPath is a required configuration field and cannot be empty")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format: %q", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log level: %q", cfg.LogLevel)
	}

	return &cfg, nil
}

func (c *Config) slogLevel() slog.Level {
	return logLevels[c.LogLevel]
}
