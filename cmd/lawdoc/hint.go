package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	lawdoc "github.com/alnah/go-lawdoc"
	"github.com/alnah/go-lawdoc/internal/config"
	"github.com/alnah/go-lawdoc/internal/fileutil"
	"github.com/alnah/go-lawdoc/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, lawdoc.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, lawdoc.ErrImagesNotReady), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigPaths())
	case errors.Is(err, config.ErrLetterheadNotFound):
		if env.AssetLoader == nil {
			return hints.ForLetterheadNotFound(nil)
		}
		return hints.ForLetterheadNotFound(env.AssetLoader.Letterheads())
	case errors.Is(err, lawdoc.ErrStyleNotFound):
		if env.AssetLoader == nil {
			return ""
		}
		return hints.ForStyleNotFound(env.AssetLoader.Styles())
	case errors.Is(err, fileutil.ErrOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}

// userConfigPaths returns the user-level config location.
func userConfigPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-lawdoc", "lawdoc.yaml")}
}
