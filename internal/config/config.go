// Package config handles the optional run configuration shared by both
// converters.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the configuration file structure. Every field has a
// zero-value default; CLI flags win over file values.
type Config struct {
	// HeaderOverrides holds extra header-to-field rows merged into the
	// workbook schemas, keyed by entity type. This covers municipalities
	// whose tables add or rename columns.
	HeaderOverrides map[string]map[string]string `yaml:"header_overrides,omitempty"`

	// OutputDir overrides the directory derived from the input path.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Strict aborts a run on the first invalid row.
	Strict bool `yaml:"strict,omitempty"`

	// Compact emits minified GeoJSON.
	Compact bool `yaml:"compact,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOptional returns a zero config when no path is given.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	return Load(path)
}

// Overrides returns the header overrides for one entity type, nil when none
// are configured.
func (c *Config) Overrides(entity string) map[string]string {
	return c.HeaderOverrides[entity]
}
