// Package config loads the optional YAML configuration file of the
// unitconvert command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats accepted in the configuration file and on the command line.
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// ShortestPrecision formats values with the fewest digits that round-trip.
const ShortestPrecision = -1

// Config is the on-disk configuration.
type Config struct {
	Version string `yaml:"version"`
	// Precision is the number of digits after the decimal point in results.
	// ShortestPrecision keeps the exact shortest representation.
	Precision *int   `yaml:"precision,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Log       Log    `yaml:"log"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // "console" or "json"
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config

	applyDefaults(&c)

	return &c
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}

	return filepath.Join(dir, "unitconvert", "config.yaml"), nil
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads the file at path. An empty path means DefaultPath, and a
// missing default file yields Default.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Precision == nil {
		p := ShortestPrecision
		c.Precision = &p
	}

	if c.Output == "" {
		c.Output = OutputText
	}

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}

	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Precision != nil && *c.Precision < ShortestPrecision {
		return fmt.Errorf("invalid precision %d: must be %d or greater", *c.Precision, ShortestPrecision)
	}

	if err := ValidateOutput(c.Output); err != nil {
		return err
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}

	return nil
}

// ValidateOutput checks that format names a supported output format.
func ValidateOutput(format string) error {
	switch format {
	case OutputText, OutputYAML, OutputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, yaml, json", format)
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
