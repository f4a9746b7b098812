package config

import (
	"os"
	"path/filepath"
	"testing"

	domainerr "jsdeps/internal/core/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jsdeps.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version = 1

[builtins]
include_defaults = false
extra = ["electron", "  ", " bun "]

[filter]
ignore = ["@types/*", ""]

[output]
format = " JSON "

[observability]
enable_metrics = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Builtins.DefaultsEnabled() {
		t.Error("expected include_defaults = false")
	}
	if len(cfg.Builtins.Extra) != 2 || cfg.Builtins.Extra[1] != "bun" {
		t.Errorf("unexpected extras %v", cfg.Builtins.Extra)
	}
	if len(cfg.Filter.Ignore) != 1 || cfg.Filter.Ignore[0] != "@types/*" {
		t.Errorf("unexpected ignore %v", cfg.Filter.Ignore)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected json format, got %q", cfg.Output.Format)
	}
	if !cfg.Observability.EnableMetrics {
		t.Error("expected metrics enabled")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("expected version 1, got %d", cfg.Version)
	}
	if cfg.Output.Format != FormatLines {
		t.Errorf("expected lines format, got %q", cfg.Output.Format)
	}
	if !cfg.Builtins.DefaultsEnabled() {
		t.Error("expected built-in defaults enabled")
	}
}

func TestLoadError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !domainerr.IsCode(err, domainerr.CodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}

	_, err = Load(writeConfig(t, "version = ["))
	if !domainerr.IsCode(err, domainerr.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT for bad toml, got %v", err)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version = 3"},
		{"format", "[output]\nformat = \"xml\""},
		{"glob", "[filter]\nignore = [\"@types/[\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !domainerr.IsCode(err, domainerr.CodeValidationError) {
				t.Errorf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	cfg, err := LoadOrDefault(DefaultPath)
	if err != nil {
		t.Fatalf("expected defaults when %s is missing, got %v", DefaultPath, err)
	}
	if cfg.Output.Format != FormatLines {
		t.Errorf("expected default format, got %q", cfg.Output.Format)
	}

	if _, err := LoadOrDefault(filepath.Join(dir, "other.toml")); err == nil {
		t.Error("expected error for explicit missing path")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("JSDEPS_BUILTINS_INCLUDE_DEFAULTS", "false")
	t.Setenv("JSDEPS_BUILTINS_EXTRA", "electron, bun")
	t.Setenv("JSDEPS_FILTER_IGNORE", "@types/*")
	t.Setenv("JSDEPS_OUTPUT_FORMAT", "JSON")
	t.Setenv("JSDEPS_OBSERVABILITY_ENABLE_METRICS", "notabool")

	cfg := DefaultConfig()
	ApplyEnvOverrides(cfg)

	if cfg.Builtins.DefaultsEnabled() {
		t.Error("expected defaults disabled by env")
	}
	if len(cfg.Builtins.Extra) != 2 || cfg.Builtins.Extra[1] != "bun" {
		t.Errorf("unexpected extras %v", cfg.Builtins.Extra)
	}
	if cfg.Output.Format != FormatJSON {
		t.Errorf("expected json, got %q", cfg.Output.Format)
	}
	if cfg.Observability.EnableMetrics {
		t.Error("invalid bool must be ignored")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("expected overridden config to validate, got %v", err)
	}
}
