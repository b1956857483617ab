package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultCompanyID is the company the bundled restaurant chart is seeded for.
	DefaultCompanyID = "3576839e-d83a-4061-8551-fe9b5d971111"
	// DefaultCreatedBy is the user recorded as creator of every seeded row.
	DefaultCreatedBy = "8a130a3e-0490-48b9-abe5-769af0dee345"
	// DefaultCompanyName is shown in the script's header comment.
	DefaultCompanyName = "Restaurant Company"
)

// Config represents an optional coaseed.yaml file.
type Config struct {
	Company   CompanyConfig `yaml:"company"`
	CreatedBy string        `yaml:"created_by"`
	Chart     string        `yaml:"chart"` // path to a chart CSV; empty = embedded chart
	LogLevel  string        `yaml:"log_level"`
}

// CompanyConfig identifies the company whose chart is seeded.
type CompanyConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Load reads a coaseed.yaml file from disk. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file or flags are given.
func Default() *Config {
	return &Config{
		Company: CompanyConfig{
			ID:   DefaultCompanyID,
			Name: DefaultCompanyName,
		},
		CreatedBy: DefaultCreatedBy,
		LogLevel:  "info",
	}
}

// Validate checks that both identifiers are UUIDs and that the company name
// fits on one line. All three are embedded verbatim into the script.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Company.Name, "\r\n") {
		return fmt.Errorf("company name %q: must not contain line breaks", c.Company.Name)
	}
	if _, err := uuid.Parse(c.Company.ID); err != nil {
		return fmt.Errorf("company id %q: %w", c.Company.ID, err)
	}
	if _, err := uuid.Parse(c.CreatedBy); err != nil {
		return fmt.Errorf("created_by %q: %w", c.CreatedBy, err)
	}
	return nil
}
