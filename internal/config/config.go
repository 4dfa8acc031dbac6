// Package config loads llvmshim settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds llvmshim configuration
type Config struct {
	// LibraryPath skips the search when set.
	LibraryPath string   `yaml:"library_path"`
	// Compiler overrides RUSTC.
	Compiler    string   `yaml:"compiler"`
	// Host overrides HOST, the architecture triple of the toolchain.
	Host        string   `yaml:"host"`
	// ExtraDirs are searched before any derived directory.
	ExtraDirs   []string `yaml:"extra_dirs"`
	Debug       bool     `yaml:"debug"`
	// Timeout bounds the search including the compiler and rustup invocations. Zero means no limit.
	Timeout     Duration `yaml:"timeout"`
}

// Duration is a time.Duration read from strings such as "5s".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing timeout: %w", err)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	if d == 0 {
		return "", nil
	}
	return time.Duration(d).String(), nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// DefaultPath returns $HOME/.config/llvmshim/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "llvmshim", "config.yaml"), nil
}

// LoadConfig loads configuration from file. A missing file yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Overrides returns the environment variables the configuration sets.
func (c *Config) Overrides() map[string]string {
	return map[string]string{
		"RUSTC": c.Compiler,
		"HOST":  c.Host,
	}
}
