// Package config loads the immutable start-up configuration. The
// value is constructed once and passed into every component; nothing
// reads it ambiently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	TabsetsDir        string
	RestoreColors     bool
	RestoreDimensions bool
	FuzzySelector     bool
	WeztermBin        string
	AutosaveInterval  time.Duration
}

// fileConfig is the on-disk shape. Pointers distinguish "absent" from
// zero values; the interval is a duration string ("90s", "5m").
type fileConfig struct {
	TabsetsDir        *string `yaml:"tabsets_dir"`
	RestoreColors     *bool   `yaml:"restore_colors"`
	RestoreDimensions *bool   `yaml:"restore_dimensions"`
	FuzzySelector     *bool   `yaml:"fuzzy_selector"`
	WeztermBin        *string `yaml:"wezterm_bin"`
	AutosaveInterval  *string `yaml:"autosave_interval"`
}

func Default() Config {
	return Config{
		TabsetsDir:       DefaultTabsetsDir(),
		WeztermBin:       "wezterm",
		AutosaveInterval: 5 * time.Minute,
	}
}

// DefaultTabsetsDir is the host config directory plus "/tabsets",
// overridable through TABSET_DIR.
func DefaultTabsetsDir() string {
	if v := strings.TrimSpace(os.Getenv("TABSET_DIR")); v != "" {
		return v
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ".tabsets"
	}
	return filepath.Join(base, "wezterm", "tabsets")
}

// Load reads <user-config>/tabset/config.yaml over the defaults.
// A missing file is not an error; defaults apply.
func Load() (Config, error) {
	cfg := Default()
	base, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}
	return loadFrom(cfg, filepath.Join(base, "tabset", "config.yaml"))
}

func loadFrom(cfg Config, path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.TabsetsDir != nil && strings.TrimSpace(*fc.TabsetsDir) != "" {
		cfg.TabsetsDir = *fc.TabsetsDir
	}
	if fc.RestoreColors != nil {
		cfg.RestoreColors = *fc.RestoreColors
	}
	if fc.RestoreDimensions != nil {
		cfg.RestoreDimensions = *fc.RestoreDimensions
	}
	if fc.FuzzySelector != nil {
		cfg.FuzzySelector = *fc.FuzzySelector
	}
	if fc.WeztermBin != nil && strings.TrimSpace(*fc.WeztermBin) != "" {
		cfg.WeztermBin = *fc.WeztermBin
	}
	if fc.AutosaveInterval != nil {
		d, err := time.ParseDuration(strings.TrimSpace(*fc.AutosaveInterval))
		if err != nil {
			return cfg, fmt.Errorf("parse %s: autosave_interval: %w", path, err)
		}
		if d > 0 {
			cfg.AutosaveInterval = d
		}
	}
	return cfg, nil
}
