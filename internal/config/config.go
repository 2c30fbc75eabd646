// Package config loads and saves simterm settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"simterm/internal/session"
)

// FileName is the name of the settings file inside the settings directory.
const FileName = "config.toml"

// Config holds user-adjustable settings.
type Config struct {
	// Host is the hostname shown in the prompt.
	Host string `toml:"host"`

	// Theme is the startup theme ("dark" or "light").
	Theme string `toml:"theme"`

	// DataDir overrides where the credential registry is stored.
	// Empty means the settings directory itself.
	DataDir string `toml:"data_dir,omitempty"`
}

// Default returns a config with sensible defaults.
func Default() *Config {
	return &Config{
		Host:  "simterm",
		Theme: string(session.ThemeDark),
	}
}

// DefaultDir returns the standard settings directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "simterm"), nil
}

// Path returns the settings file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads configuration from a settings directory. A missing file
// yields defaults, not an error - the config is opt-in.
func Load(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Host == "" {
		cfg.Host = "simterm"
	}
	if cfg.Theme == "" {
		cfg.Theme = string(session.ThemeDark)
	}
	return cfg, nil
}

// Save writes configuration to a settings directory, creating it if
// needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	return os.WriteFile(Path(dir), data, 0644)
}

// ResolveDataDir returns the directory holding the credential registry.
func (c *Config) ResolveDataDir(settingsDir string) string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return settingsDir
}
