package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, expected 5000", cfg.Port)
	}
	if cfg.Language != "cs" {
		t.Errorf("Language = %q, expected cs", cfg.Language)
	}
	if cfg.BaseURL != "" {
		t.Errorf("BaseURL = %q, expected empty", cfg.BaseURL)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("port: 8080\nlanguage: en\nbaseURL: https://example.com/restapi\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, expected 8080", cfg.Port)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, expected en", cfg.Language)
	}
	if cfg.BaseURL != "https://example.com/restapi" {
		t.Errorf("BaseURL = %q, expected https://example.com/restapi", cfg.BaseURL)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "9000")
	t.Setenv("REGIOJET_LANGUAGE", "de")

	cfg, err := load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, expected env override 9000", cfg.Port)
	}
	if cfg.Language != "de" {
		t.Errorf("Language = %q, expected de", cfg.Language)
	}
}

func TestInvalidPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	if _, err := load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for unparsable PORT, got nil")
	}

	t.Setenv("PORT", "0")
	if _, err := load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected validation error for PORT=0, got nil")
	}
}

func TestInvalidBaseURL(t *testing.T) {
	t.Setenv("REGIOJET_BASE_URL", "not a url")
	if _, err := load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected validation error for malformed base URL, got nil")
	}
}
