// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for movement configuration.
	DefaultConfigDir = ".movement"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite file name inside the config directory.
	DefaultDatabaseFile = "movement.db"
)

// Vocabularies name the owning record in snapshot files.
const (
	VocabularyMovement = "movement"
	VocabularyReligion = "religion"
)

// Log modes.
const (
	LogModeDevelopment = "development"
	LogModeProduction  = "production"
)

var (
	// reNonAlphanumeric matches characters that aren't alphanumeric or underscore.
	reNonAlphanumeric = regexp.MustCompile(`[^a-z0-9_]`)
	// reMultipleUnderscores matches consecutive underscores.
	reMultipleUnderscores = regexp.MustCompile(`_+`)
)

// Config holds static configuration (read-only after init).
type Config struct {
	Vocabulary string       `yaml:"vocabulary,omitempty"`
	SQLite     SQLiteConfig `yaml:"sqlite,omitempty"`
	Log        LogConfig    `yaml:"log,omitempty"`
	Views      ViewsConfig  `yaml:"views,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite snapshot store.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database.
	// When empty, DatabasePath under the config directory is used.
	Path string `yaml:"path,omitempty"`
}

// LogConfig selects the logger flavour.
type LogConfig struct {
	Mode string `yaml:"mode,omitempty"`
}

// ViewsConfig holds view-model defaults.
type ViewsConfig struct {
	// TopLimit is the number of dashboard highlights per collection.
	TopLimit int `yaml:"top_limit,omitempty"`
	// GraphDepth is the default expansion depth of `movement view graph`.
	GraphDepth int `yaml:"graph_depth,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Vocabulary: VocabularyMovement,
		Log: LogConfig{
			Mode: LogModeDevelopment,
		},
		Views: ViewsConfig{
			TopLimit:   5,
			GraphDepth: 2,
		},
	}
}

// Load loads configuration from the .movement directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'movement init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if mode := os.Getenv("MOVEMENT_LOG_MODE"); mode != "" {
		c.Log.Mode = mode
	}
	if vocab := os.Getenv("MOVEMENT_VOCABULARY"); vocab != "" {
		c.Vocabulary = vocab
	}
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	var errs []error
	switch c.Vocabulary {
	case VocabularyMovement, VocabularyReligion:
	default:
		errs = append(errs, fmt.Errorf("unknown vocabulary %q (want %s or %s)", c.Vocabulary, VocabularyMovement, VocabularyReligion))
	}
	switch c.Log.Mode {
	case LogModeDevelopment, LogModeProduction:
	default:
		errs = append(errs, fmt.Errorf("unknown log mode %q", c.Log.Mode))
	}
	if c.Views.TopLimit < 0 {
		errs = append(errs, errors.New("views.top_limit must not be negative"))
	}
	if c.Views.GraphDepth < 0 {
		errs = append(errs, errors.New("views.graph_depth must not be negative"))
	}
	return errors.Join(errs...)
}

// DatabasePath returns the SQLite path, defaulting to the config directory.
func (c *Config) DatabasePath(basePath string) string {
	if c.SQLite.Path != "" {
		return c.SQLite.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
}

// ConfigDir returns the path to the .movement config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// SanitizeSnapshotName converts a snapshot name to a stable storage key.
func SanitizeSnapshotName(name string) string {
	// Convert to lowercase
	name = strings.ToLower(name)

	// Replace spaces and hyphens with underscores
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")

	// Remove any characters that aren't alphanumeric or underscore
	name = reNonAlphanumeric.ReplaceAllString(name, "")

	// Remove consecutive underscores
	name = reMultipleUnderscores.ReplaceAllString(name, "_")

	// Trim leading/trailing underscores
	name = strings.Trim(name, "_")

	if name == "" {
		return "default"
	}

	return name
}
