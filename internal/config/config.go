// Package config loads the optional geocalc configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read from the working directory when
// no path is given.
const DefaultFile = "geocalc.yaml"

// Config holds settings for the calculator REPL.
type Config struct {
	// Prompt is shown before each input line.
	Prompt string `yaml:"prompt" toml:"prompt"`
	// Precision is the number of bits used by numeric methods.
	Precision uint `yaml:"precision" toml:"precision"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Banner controls the greeting printed by interactive sessions.
	Banner *bool `yaml:"banner" toml:"banner"`
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	banner := true
	return &Config{
		Prompt:    "> ",
		Precision: 64,
		LogLevel:  "warn",
		Banner:    &banner,
	}
}

// ShowBanner reports whether the banner is enabled.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}

// Load reads the configuration at path over the defaults. If path is empty,
// DefaultFile is read if it exists. The format is chosen by extension: .toml
// for TOML, anything else for YAML.
func Load(path string) (*Config, error) {
	cfg := Default()
	optional := path == ""
	if optional {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var file Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.merge(&file)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the values set in o into c.
func (c *Config) merge(o *Config) {
	if o.Prompt != "" {
		c.Prompt = o.Prompt
	}
	if o.Precision != 0 {
		c.Precision = o.Precision
	}
	if s := strings.TrimSpace(o.LogLevel); s != "" {
		c.LogLevel = s
	}
	if o.Banner != nil {
		c.Banner = o.Banner
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Precision == 0 {
		return errors.New("precision must be positive")
	}
	return nil
}
