package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "saldo.yaml"

// Config represents the top-level saldo.yaml configuration.
type Config struct {
	Ledger  LedgerConfig  `yaml:"ledger"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Git     GitConfig     `yaml:"git"`
}

// LedgerConfig locates the ledger file.
type LedgerConfig struct {
	File string `yaml:"file"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// GitConfig controls committing the ledger file after each save.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a saldo.yaml file from disk. Unset fields keep their defaults.
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

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
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

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			File: "transacoes.csv",
		},
		Display: DisplayConfig{
			CurrencySymbol: "R$",
		},
		Log: LogConfig{
			Level: "warn",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Saldo",
			AuthorEmail: "saldo@localhost",
		},
	}
}
