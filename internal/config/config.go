package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-lawdoc/internal/dateutil"
	"github.com/alnah/go-lawdoc/internal/fileutil"
	"github.com/alnah/go-lawdoc/internal/pipeline"
	"github.com/alnah/go-lawdoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxNameLength          = 200  // Company name, lawyer name
	MaxTitleLength         = 200  // Document title
	MaxURLLength           = 2048 // Browser limit
	MaxTextLength          = 500  // Header/footer free-form text
	MaxContactLength       = 254  // Phone, email (RFC 5321), website
	MaxColorLength         = 20   // "#1e3a5f" or a color name
	MaxWatermarkTextLength = 100  // "مسودة", "CONFIDENTIAL"
	MaxPathLength          = 4096 // Filesystem paths
	MaxValueLength         = 10000
)

// configDirName is the directory under the user config dir searched for
// config files.
const configDirName = "go-lawdoc"

// Config holds CLI defaults for document generation.
type Config struct {
	Letterhead string         `yaml:"letterhead"` // Preset name or path to a letterhead file
	Defaults   DefaultsConfig `yaml:"defaults"`
	Output     OutputConfig   `yaml:"output"`
	Assets     AssetsConfig   `yaml:"assets"`
	Timeout    string         `yaml:"timeout"` // Go duration, e.g. "45s" (empty = library default)
}

// DefaultsConfig holds values applied when the command line leaves them unset.
type DefaultsConfig struct {
	Format     string            `yaml:"format"`     // "html", "markdown" or "text"
	Style      string            `yaml:"style"`      // Stylesheet name (empty = contract)
	Title      string            `yaml:"title"`      // Document title
	LawyerName string            `yaml:"lawyerName"` // Watermark lawyer name
	Values     map[string]string `yaml:"values"`     // Fallback placeholder values
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the content file
	HTML       bool   `yaml:"html"`       // Also write the assembled HTML
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// DefaultConfig returns a configuration that relies on built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// Validate checks field lengths and enumerations. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"letterhead", c.Letterhead, MaxPathLength},
		{"defaults.style", c.Defaults.Style, MaxNameLength},
		{"defaults.title", c.Defaults.Title, MaxTitleLength},
		{"defaults.lawyerName", c.Defaults.LawyerName, MaxNameLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	for key, value := range c.Defaults.Values {
		if err := validateFieldLength("defaults.values."+key, value, MaxValueLength); err != nil {
			return err
		}
		if err := dateutil.ValidateAuto(value); err != nil {
			return fmt.Errorf("%w: defaults.values.%s: %v", ErrInvalidValue, key, err)
		}
	}

	if _, err := pipeline.ParseFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("%w: defaults.format: %v", ErrInvalidValue, err)
	}

	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value yields zero.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: timeout: %v", ErrInvalidValue, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: timeout: must be positive, got %s", ErrInvalidValue, c.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFile(configPath, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	// A relative letterhead path in a config file is relative to that file.
	if fileutil.IsFilePath(cfg.Letterhead) && !filepath.IsAbs(cfg.Letterhead) {
		cfg.Letterhead = filepath.Join(filepath.Dir(configPath), cfg.Letterhead)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-lawdoc/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
