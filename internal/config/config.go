// Package config loads souldos configuration from an optional YAML file
// with environment variable overrides applied on top.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all souldos configuration.
type Config struct {
	Shell   ShellConfig   `yaml:"shell"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShellConfig configures the interactive loop.
type ShellConfig struct {
	// Prompt is printed before each read. Trailing space is preserved.
	Prompt string `yaml:"prompt"`

	// NoColor disables lipgloss styling in all shell output.
	NoColor bool `yaml:"no_color"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Shell: ShellConfig{
			Prompt: "SoulDOS> ",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML config at path over the defaults and applies
// environment overrides. A missing file is not an error; the defaults
// (plus env overrides) apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No file, defaults apply.
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = Default().Shell.Prompt
	}
	return cfg, nil
}

// applyEnvOverrides layers environment variables over the loaded file.
// NO_COLOR follows the usual convention: any non-empty value disables
// color.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SOULDOS_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	if v := os.Getenv("SOULDOS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		c.Shell.NoColor = true
	}
}
