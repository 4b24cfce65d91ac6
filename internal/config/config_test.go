package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
strict: true
compact: true
output_dir: out
header_overrides:
  parking-sites:
    "Durchfahrtshöhe (cm)": max_height
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Strict || !cfg.Compact || cfg.OutputDir != "out" {
		t.Errorf("cfg = %+v", cfg)
	}

	overrides := cfg.Overrides("parking-sites")
	if overrides["Durchfahrtshöhe (cm)"] != "max_height" {
		t.Errorf("Overrides(parking-sites) = %v", overrides)
	}
	if cfg.Overrides("parking-spots") != nil {
		t.Errorf("Overrides(parking-spots) = %v; want nil", cfg.Overrides("parking-spots"))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() on missing file succeeded; want error")
	}
}

func TestLoadOptionalEmptyPath(t *testing.T) {
	cfg, err := LoadOptional("")
	if err != nil {
		t.Fatalf("LoadOptional() error = %v", err)
	}
	if cfg.Strict || cfg.Compact || cfg.OutputDir != "" || cfg.Overrides("parking-sites") != nil {
		t.Errorf("cfg = %+v; want zero config", cfg)
	}
}
