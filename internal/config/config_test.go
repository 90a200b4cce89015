package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lox.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
	if cfg.Output.Format != FormatAST {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, FormatAST)
	}
	if cfg.Output.NoColor {
		t.Error("Output.NoColor should default to false")
	}
	if cfg.REPL.Prompt != ">> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, ">> ")
	}
	if filepath.Base(cfg.REPL.History) != ".lox_history" {
		t.Errorf("REPL.History = %q, want a .lox_history file", cfg.REPL.History)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"
format = "json"

[output]
format = "yaml"
no_color = true

[repl]
prompt = "lox> "
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Output.Format != FormatYAML {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, FormatYAML)
	}
	if !cfg.Output.NoColor {
		t.Error("Output.NoColor should be true")
	}
	if cfg.REPL.Prompt != "lox> " {
		t.Errorf("REPL.Prompt = %q, want %q", cfg.REPL.Prompt, "lox> ")
	}
	// Not set in the file
	if cfg.REPL.History == "" {
		t.Error("REPL.History should get a default")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid toml", "[log\nlevel = "},
		{"invalid output format", "[output]\nformat = \"xml\""},
		{"invalid log format", "[log]\nformat = \"logfmt\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() should fail for an explicit missing file")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LOX_CONFIG", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without a config file should not fail: %v", err)
	}
	if cfg.Output.Format != FormatAST {
		t.Errorf("Output.Format = %q, want the default %q", cfg.Output.Format, FormatAST)
	}
}
