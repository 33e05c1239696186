// internal/app/bootstrap.go
package app

import (
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"go-reactor-sim/internal/config"
	"go-reactor-sim/internal/defs"
	"go-reactor-sim/internal/scripting"
)

// LoadConfig reads path over the defaults. A missing file is not an error
// when allowMissing is set, the defaults are used instead.
func LoadConfig(path string, allowMissing bool) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil && allowMissing && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// LoadLibrary returns the block definitions named by the config.
func LoadLibrary(cfg *config.Config) (*defs.Library, error) {
	if cfg.Blocks.DefsPath == "" {
		return defs.NewDefaultLibrary(), nil
	}
	return defs.LoadLibrary(cfg.Blocks.DefsPath)
}

// OpenController loads the Lua controller from the config, nil when none is set.
func OpenController(cfg *config.Config, log *zap.Logger) (*scripting.Engine, error) {
	if cfg.Scripting.Controller == "" {
		return nil, nil
	}
	engine, err := scripting.NewEngine(cfg.Scripting.Controller, log)
	if err != nil {
		return nil, fmt.Errorf("controller %s: %w", cfg.Scripting.Controller, err)
	}
	return engine, nil
}
