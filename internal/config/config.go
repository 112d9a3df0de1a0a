package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ecritures.yaml configuration.
type Config struct {
	Journal  JournalConfig            `yaml:"journal"`
	Accounts map[string]AccountConfig `yaml:"accounts,omitempty"`
	Server   ServerConfig             `yaml:"server"`
}

// JournalConfig controls how entries are generated.
type JournalConfig struct {
	Code            string `yaml:"code"`              // journal code, e.g. "VT2"
	GroupBy         string `yaml:"group_by"`          // "order" or "day"
	ShippingVATRate string `yaml:"shipping_vat_rate"` // "0" (charge is ex-tax) or "20"
}

// AccountConfig overrides one account of the fixed sales chart, keyed by
// the account role (clients, tva_20, tva_55, sales_20, sales_55,
// shipping). Empty fields keep the default.
type AccountConfig struct {
	Number string `yaml:"number,omitempty"`
	Label  string `yaml:"label,omitempty"`
}

// ServerConfig controls the web form.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// Load reads an ecritures.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault reads a config file, returning defaults when it does not
// exist. An empty path always yields defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
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

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			Code:            "VT2",
			GroupBy:         "order",
			ShippingVATRate: "0",
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}
