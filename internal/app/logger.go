package app

import (
	"io"
	"log/slog"
)

// newLogger builds the app's own logger from a validated Config, leaving the
// process-global logger untouched. It writes to outW, which the App points at
// its error stream so generated source on stdout stays clean.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.slogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
