// Package config tests configuration loading.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.StoreFile != DefaultStoreFile {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, DefaultStoreFile)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel: got %q, want %q", cfg.LogLevel, DefaultLogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want %q", cfg.LogFormat, DefaultLogFormat)
	}
	if cfg.SchemaFile != "" {
		t.Errorf("SchemaFile: got %q, want empty", cfg.SchemaFile)
	}
	if cfg.StrictValidate {
		t.Error("StrictValidate: got true, want false")
	}
}

func TestLoadProjectConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tmpDir)

	// Keep the user config dir out of the picture.
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	content := `store_file = "work/tasks.json"
schema_file = "tasks.schema.json"
strict_validate = true
log_level = "debug"
`
	if err := os.WriteFile("tasktrack.toml", []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreFile != "work/tasks.json" {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, "work/tasks.json")
	}
	if cfg.SchemaFile != "tasks.schema.json" {
		t.Errorf("SchemaFile: got %q, want %q", cfg.SchemaFile, "tasks.schema.json")
	}
	if !cfg.StrictValidate {
		t.Error("StrictValidate: got false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	// Unset fields keep their defaults.
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("LogFormat: got %q, want default %q", cfg.LogFormat, DefaultLogFormat)
	}
}

func TestLoadHiddenProjectConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tmpDir)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if err := os.WriteFile(".tasktrack.toml", []byte(`store_file = "hidden.json"`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.StoreFile != "hidden.json" {
		t.Errorf("StoreFile: got %q, want %q", cfg.StoreFile, "hidden.json")
	}
}

func TestLoadBadProjectConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tmpDir)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if err := os.WriteFile("tasktrack.toml", []byte("store_file = ["), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load() with malformed TOML: expected error")
	}
}
