// Package config holds the constants of colorexpr and loads the optional
// .colorexpr.yaml file.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config represents .colorexpr.yaml. Every key is optional.
type Config struct {
	// Evaluator is "core" or "less".
	Evaluator string `yaml:"evaluator,omitempty"`

	// WithAst adds the syntax tree dump to every result.
	WithAst bool `yaml:"with_ast,omitempty"`

	// AstWithLocs keeps source locations in the dump.
	AstWithLocs bool `yaml:"ast_with_locs,omitempty"`

	// AppendNames prints the CSS name next to colors that have one.
	AppendNames bool `yaml:"append_names,omitempty"`

	// Color is "auto", "always" or "never" and controls terminal swatches.
	Color string `yaml:"color,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// CacheSize bounds the parse cache; 0 means the default, a negative
	// value disables caching.
	CacheSize int `yaml:"cache_size,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig reads and parses a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfig searches for a config file starting from dir and walking up
// to parent directories. It returns "" and no error when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	if !slices.Contains([]string{EvaluatorCore, EvaluatorLess}, c.Evaluator) {
		return errors.Newf("%s: evaluator: unknown evaluator %q", path, c.Evaluator)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return errors.Newf("%s: color: expected auto, always or never, got %q", path, c.Color)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return errors.Newf("%s: log_level: unknown level %q", path, c.LogLevel)
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Evaluator == "" {
		c.Evaluator = EvaluatorCore
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
	if c.LogLevel == "" {
		c.LogLevel = LogLevelWarn
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
}

var logLevels = map[string]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
}

// Level maps LogLevel onto a slog level.
func (c *Config) Level() slog.Level {
	if l, ok := logLevels[c.LogLevel]; ok {
		return l
	}
	return slog.LevelWarn
}
