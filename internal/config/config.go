// Package config loads nitro configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (NITRO_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .nitro.yaml in current directory
//  2. ~/.config/nitro/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all nitro configuration.
type Config struct {
	// Rendering defaults; the command line can still override per run.
	Icons bool   `yaml:"icons"` // icon prefixes by default
	Color string `yaml:"color"` // "auto" (default) or "never"

	// Default cap for zoxide results in list output. 0 means unlimited.
	ZoxideLimit int `yaml:"zoxide_limit"`

	// External tool binaries.
	TmuxBin   string `yaml:"tmux_bin"`
	ZoxideBin string `yaml:"zoxide_bin"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Color:     "auto",
		TmuxBin:   "tmux",
		ZoxideBin: "zoxide",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	mergeEnv(cfg)

	if cfg.Color != "auto" && cfg.Color != "never" {
		return nil, fmt.Errorf("invalid color setting %q (expected auto or never)", cfg.Color)
	}
	if cfg.ZoxideLimit < 0 {
		return nil, fmt.Errorf("invalid zoxide_limit %d", cfg.ZoxideLimit)
	}

	return cfg, nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	if data, err := os.ReadFile(".nitro.yaml"); err == nil {
		return ".nitro.yaml", data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "nitro", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Icons {
		cfg.Icons = file.Icons
	}
	if file.Color != "" {
		cfg.Color = file.Color
	}
	if file.ZoxideLimit != 0 {
		cfg.ZoxideLimit = file.ZoxideLimit
	}
	if file.TmuxBin != "" {
		cfg.TmuxBin = file.TmuxBin
	}
	if file.ZoxideBin != "" {
		cfg.ZoxideBin = file.ZoxideBin
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("NITRO_ICONS"); v == "true" || v == "1" {
		cfg.Icons = true
	}
	if v := os.Getenv("NITRO_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("NITRO_ZOXIDE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ZoxideLimit = n
		}
	}
	if v := os.Getenv("NITRO_TMUX_BIN"); v != "" {
		cfg.TmuxBin = v
	}
	if v := os.Getenv("NITRO_ZOXIDE_BIN"); v != "" {
		cfg.ZoxideBin = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}

// ColorEnabled decides the effective color state for one invocation.
// An explicit --no-color flag always wins; the NO_COLOR convention and a
// "color: never" config each force color off as well.
func (c *Config) ColorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Color != "never"
}
