// Package config loads the optional soso.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = soso.ErrConfigNotFound

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Indent *int   `yaml:"indent,omitempty"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ProjectConfig struct {
	Strategy        string         `yaml:"strategy"`
	Extended        bool           `yaml:"extended"`
	RepositoryRoot  string         `yaml:"repository_root"`
	InLanguage      string         `yaml:"in_language"`
	Overrides       map[string]any `yaml:"overrides"`
	Output          OutputConfig   `yaml:"output"`
	Workers         int            `yaml:"workers"`
	ContinueOnError bool           `yaml:"continue_on_error"`
	MetricsFile     string         `yaml:"metrics_file"`
	Log             LogConfig      `yaml:"log"`
}

const ConfigFileName = "soso.yaml"

// Log formats accepted by log.format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Load reads soso.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads and validates a config file at an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", configPath, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, soso.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *ProjectConfig) Validate() error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers cannot be negative: %w", soso.ErrInvalidConfig))
	}
	if c.Output.Indent != nil && *c.Output.Indent < 0 {
		errs = append(errs, fmt.Errorf("output.indent cannot be negative: %w", soso.ErrInvalidConfig))
	}
	switch c.Log.Format {
	case "", LogFormatConsole, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be %s or %s: %w",
			c.Log.Format, LogFormatConsole, LogFormatJSON, soso.ErrInvalidConfig))
	}
	for key := range c.Overrides {
		if key == "" {
			errs = append(errs, fmt.Errorf("overrides: empty property name: %w", soso.ErrInvalidOverride))
		}
	}

	return errors.Join(errs...)
}
