package main

import (
	"io"
	"os"
	"time"

	"github.com/alnah/go-lawdoc/internal/assets"
	"github.com/alnah/go-lawdoc/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, configuration, and asset loading.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	AssetLoader assets.AssetLoader
	Config      *config.Config // Used when --config is not given
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		AssetLoader: assets.NewEmbeddedLoader(),
		Config:      config.DefaultConfig(),
	}
}

// loadConfig returns the config named by nameOrPath, or the environment's
// config when nameOrPath is empty. The result is a copy safe to modify.
func (e *Environment) loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath != "" {
		return config.LoadConfig(nameOrPath)
	}

	cfg := config.DefaultConfig()
	if e.Config != nil {
		*cfg = *e.Config
		cfg.Defaults.Values = cloneValues(e.Config.Defaults.Values)
	}
	return cfg, nil
}

// assetLoader returns the loader for letterhead presets. A custom asset
// path from flags or config takes precedence over the environment loader.
func (e *Environment) assetLoader(basePath string) (assets.AssetLoader, error) {
	if basePath != "" {
		return assets.NewAssetResolver(basePath)
	}
	if e.AssetLoader != nil {
		return e.AssetLoader, nil
	}
	return assets.NewEmbeddedLoader(), nil
}

func cloneValues(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
