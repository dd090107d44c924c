package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level recap.yaml configuration.
type Config struct {
	TopN   int          `yaml:"top_n"`
	Dining DiningConfig `yaml:"dining"`
}

// DiningConfig tunes dining detection.
type DiningConfig struct {
	// AllowList names stalls that count as dining despite not matching
	// the floor-stall naming convention. Entries are matched
	// case-insensitively as substrings of the service field.
	AllowList []string `yaml:"allow_list,omitempty"`
}

// Load reads a recap.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.TopN <= 0 {
		cfg.TopN = Default().TopN
	}
	return &cfg, nil
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

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		TopN: 8,
	}
}
