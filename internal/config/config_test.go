package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.WeztermBin != "wezterm" {
		t.Fatalf("expected wezterm binary, got %q", cfg.WeztermBin)
	}
	if cfg.TabsetsDir == "" {
		t.Fatal("expected non-empty tabsets dir")
	}
	if cfg.RestoreColors || cfg.RestoreDimensions || cfg.FuzzySelector {
		t.Fatal("restore and selector flags must default to false")
	}
	if cfg.AutosaveInterval != 5*time.Minute {
		t.Fatalf("expected 5m autosave interval, got %s", cfg.AutosaveInterval)
	}
}

func TestDefaultTabsetsDirEnvOverride(t *testing.T) {
	t.Setenv("TABSET_DIR", "/tmp/custom-tabsets")
	if got := DefaultTabsetsDir(); got != "/tmp/custom-tabsets" {
		t.Fatalf("expected env override, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
tabsets_dir: /data/tabsets
restore_colors: true
restore_dimensions: true
fuzzy_selector: true
wezterm_bin: /opt/wezterm/wezterm
autosave_interval: 90s
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadFrom(Default(), path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TabsetsDir != "/data/tabsets" {
		t.Fatalf("unexpected tabsets dir: %q", cfg.TabsetsDir)
	}
	if !cfg.RestoreColors || !cfg.RestoreDimensions || !cfg.FuzzySelector {
		t.Fatal("expected all flags enabled")
	}
	if cfg.WeztermBin != "/opt/wezterm/wezterm" {
		t.Fatalf("unexpected bin: %q", cfg.WeztermBin)
	}
	if cfg.AutosaveInterval != 90*time.Second {
		t.Fatalf("unexpected interval: %s", cfg.AutosaveInterval)
	}
}

func TestLoadFromMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := loadFrom(Default(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.WeztermBin != "wezterm" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadFromBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tabsets_dir: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadFrom(Default(), path); err == nil {
		t.Fatal("expected parse error")
	}
}
