// Package config loads the evaluator's optional .lambda.yaml settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name FindConfig looks for.
const FileName = ".lambda.yaml"

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the contents of a .lambda.yaml file.
type Config struct {
	// Color selects highlighting of printed terms: auto, always or never.
	Color string `yaml:"color,omitempty"`

	// MaxSteps bounds the reductions of one statement. Zero means no limit,
	// and a term without a normal form then never finishes.
	MaxSteps int `yaml:"max_steps,omitempty"`

	// History is the REPL history file. A leading ~/ is expanded.
	History string `yaml:"history,omitempty"`

	// Prelude lists source files evaluated into the environment before the
	// session starts. Relative paths are resolved against the config file.
	Prelude []string `yaml:"prelude,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Color:   ColorAuto,
		History: "~/.lambda_history",
	}
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses config data. path is used for error messages and to
// resolve relative prelude paths.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	for i, p := range cfg.Prelude {
		if !filepath.IsAbs(p) {
			cfg.Prelude[i] = filepath.Join(dir, p)
		}
	}
	return cfg, nil
}

// FindConfig searches dir and its parents for FileName. It returns "" with
// no error when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) validate(path string) error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be %q, %q or %q, got %q", path, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%s: max_steps must not be negative", path)
	}
	for i, p := range c.Prelude {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%s: prelude[%d]: empty path", path, i)
		}
	}
	return nil
}

// HistoryPath returns History with a leading ~/ replaced by the user's home
// directory.
func (c *Config) HistoryPath() string {
	rest, ok := strings.CutPrefix(c.History, "~/")
	if !ok {
		return c.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return rest
	}
	return filepath.Join(home, rest)
}
