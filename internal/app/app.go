package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/blockforge/internal/catalog"
	"github.com/vk/blockforge/internal/ctxlog"
	"github.com/vk/blockforge/internal/hcl_adapter"
	"github.com/vk/blockforge/internal/model"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Generated source goes to outW; logs go to errW so piping the
// output stays clean.
type App struct {
	outW     io.Writer
	errW     io.Writer
	logger   *slog.Logger
	registry *catalog.Registry
	script   *model.Script
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App: catalog loaded and validated, script parsed. Startup
// failures are critical and panic; the CLI shell recovers them into a clean
// exit message.
func NewApp(outW, errW io.Writer, cfg *Config, modules ...catalog.Module) *App {
	logger := newLogger(cfg, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := catalog.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All block packages registered.", "count", len(modules))

	loader := hcl_adapter.NewLoader()
	if err := loader.LoadCatalog(ctx, reg, cfg.CatalogPath); err != nil {
		panic(fmt.Errorf("failed to load block catalog: %w", err))
	}
	if err := reg.Validate(ctx); err != nil {
		// A mismatch between manifests and Go templates is a programmer
		// error, not a user error.
		panic(err)
	}

	script, err := loader.LoadScript(ctx, cfg.ScriptPath)
	if err != nil {
		panic(fmt.Errorf("failed to load script: %w", err))
	}
	logger.Debug("Script loaded.", "name", script.Name, "blocks", script.Count())

	return &App{
		outW:     outW,
		errW:     errW,
		logger:   logger,
		registry: reg,
		script:   script,
	}
}

// Registry returns the application's catalog registry. Primarily for testing.
func (a *App) Registry() *catalog.Registry {
	return a.registry
}

// Script returns the loaded script. Primarily for testing.
func (a *App) Script() *model.Script {
	return a.script
}
