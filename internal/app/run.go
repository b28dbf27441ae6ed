package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/blockforge/internal/codegen"
	"github.com/vk/blockforge/internal/ctxlog"
)

// Run generates source code for the loaded script and writes it to the
// configured destination.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	code := codegen.Generate(ctx, a.script.Blocks, a.registry)
	a.logger.Info("Generation finished.", "script", a.script.Name, "blocks", a.script.Count(), "bytes", len(code))

	if cfg.OutputPath != "" {
		if err := os.WriteFile(cfg.OutputPath, []byte(code+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		a.logger.Info("Output written.", "path", cfg.OutputPath)
		return nil
	}

	if _, err := fmt.Fprintln(a.outW, code); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
