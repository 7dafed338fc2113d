package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the global seqplan configuration.
type Config struct {
	Settings SettingsConfig `toml:"settings"`
	Defaults DefaultsConfig `toml:"defaults"`
	Web      WebConfig      `toml:"web"`
}

// SettingsConfig holds global settings.
type SettingsConfig struct {
	PlansPath string `toml:"plans_path"`
}

// DefaultsConfig holds the step totals suggested to new workflows.
// The selector itself always takes explicit values; these only seed
// the scaffolding output of `sp new`.
type DefaultsConfig struct {
	PlanningSteps int `toml:"planning_steps"`
	ReviewSteps   int `toml:"review_steps"`
}

// WebConfig holds web viewer settings.
type WebConfig struct {
	Port int `toml:"port"`
}

// DefaultDir returns the default config directory (~/.seqplan).
// If SEQPLAN_DIR is set, uses that path instead.
func DefaultDir() (string, error) {
	if d := os.Getenv("SEQPLAN_DIR"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".seqplan"), nil
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads config from the default path, applying defaults.
// If the file doesn't exist, returns a config with defaults.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads config from the given path, applying defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes config to the default path.
func (c *Config) Save() error {
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes config to the given path, creating directories as needed.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// PlansDir returns the expanded plans directory path.
func (c *Config) PlansDir() (string, error) {
	return ExpandPath(c.Settings.PlansPath)
}

// EventsDir returns the invocation log directory path.
func (c *Config) EventsDir() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "events"), nil
}

// EnsureDirs creates the plans dir and events dir if they don't exist.
func (c *Config) EnsureDirs() error {
	plans, err := c.PlansDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(plans, 0o755); err != nil {
		return fmt.Errorf("create plans dir: %w", err)
	}

	events, err := c.EventsDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(events, 0o755); err != nil {
		return fmt.Errorf("create events dir: %w", err)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Settings.PlansPath == "" {
		c.Settings.PlansPath = "~/.seqplan/plans"
	}
	if c.Defaults.PlanningSteps == 0 {
		c.Defaults.PlanningSteps = 4
	}
	if c.Defaults.ReviewSteps == 0 {
		c.Defaults.ReviewSteps = 4
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
}
