// Package config loads the user's persistent Circe settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/circe/pkg/device"
	"github.com/OpenTraceLab/circe/pkg/netlist"
)

// Config stores persistent application settings.
type Config struct {
	// NetlistPath is where exported netlists are written.
	NetlistPath string `json:"netlist_path"`
	// DefaultValues overrides the value of newly placed devices, keyed by
	// class name ("resistor", "r", ...).
	DefaultValues map[string]string `json:"default_values,omitempty"`
	// GridPitch is the on-screen size of one grid unit in pixels.
	GridPitch float64 `json:"grid_pitch"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		NetlistPath: netlist.DefaultFilename,
		GridPitch:   10,
	}
}

// DefaultPath returns the platform config file location.
func DefaultPath() (string, error) {
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\Circe
		return filepath.Join(appData, "Circe", "config.json"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	// Linux/macOS: ~/.config/circe
	return filepath.Join(homeDir, ".config", "circe", "config.json"), nil
}

// Load reads the config at path, or at DefaultPath when path is empty. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return Default(), err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to path, or to DefaultPath when path is empty,
// creating the directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every default names a known device class.
func (c *Config) Validate() error {
	for name := range c.DefaultValues {
		if _, err := device.ParseClass(name); err != nil {
			return fmt.Errorf("config: default_values: %w", err)
		}
	}
	if c.GridPitch <= 0 {
		return fmt.Errorf("config: grid_pitch must be positive, got %v", c.GridPitch)
	}
	return nil
}

// ApplyDefaults installs the configured default values on ds.
func (c *Config) ApplyDefaults(ds *device.Devices) {
	for name, value := range c.DefaultValues {
		if class, err := device.ParseClass(name); err == nil {
			ds.SetDefault(class, value)
		}
	}
}
