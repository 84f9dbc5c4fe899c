// Package config loads termic's user-level defaults: shell override,
// default grid size, scrollback cap, and input keymap tweaks.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the ~/.termic/config.yaml shape.
type Config struct {
	Shell      string       `yaml:"shell,omitempty"`
	Cols       int          `yaml:"cols,omitempty"`
	Rows       int          `yaml:"rows,omitempty"`
	Scrollback int          `yaml:"scrollback,omitempty"`
	Keymap     KeymapConfig `yaml:"keymap,omitempty"`
}

// KeymapConfig lets a user disable the few encoder behaviors that are
// opinionated rather than protocol-mandated.
type KeymapConfig struct {
	AppCursorKeysDefault bool `yaml:"app_cursor_keys_default,omitempty"`
	DisableBracketedCopy bool `yaml:"disable_bracketed_copy,omitempty"`
}

// ConfigDir returns termic's configuration directory (~/.termic/).
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".termic")
	}
	return filepath.Join(home, ".termic")
}

// Load reads config.yaml from ConfigDir.
func Load() (*Config, error) {
	return LoadFrom(filepath.Join(ConfigDir(), "config.yaml"))
}

// LoadFrom reads the config at path. A missing file is not an error —
// it returns the zero Config, which callers then fill with their own
// built-in defaults via ApplyDefaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Cols < 0 {
		return fmt.Errorf("config: cols must not be negative, got %d", c.Cols)
	}
	if c.Rows < 0 {
		return fmt.Errorf("config: rows must not be negative, got %d", c.Rows)
	}
	if c.Scrollback < 0 {
		return fmt.Errorf("config: scrollback must not be negative, got %d", c.Scrollback)
	}
	return nil
}

// ApplyDefaults fills any zero-valued fields with the given fallbacks,
// used when the config file omits them.
func (c *Config) ApplyDefaults(cols, rows, scrollback int) {
	if c.Cols == 0 {
		c.Cols = cols
	}
	if c.Rows == 0 {
		c.Rows = rows
	}
	if c.Scrollback == 0 {
		c.Scrollback = scrollback
	}
}
