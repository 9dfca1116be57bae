package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.OutputDir)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("expected default static_dir %q, got %q", "static", cfg.StaticDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.AllowAllOrigins {
		t.Error("CORS should be restricted by default")
	}
	if cfg.SessionTTL() != 2*time.Hour {
		t.Errorf("expected default session TTL 2h, got %v", cfg.SessionTTL())
	}
	if cfg.UIRateLimit != 20 || cfg.UIRateBurst != 40 {
		t.Errorf("expected default UI rate 20/s burst 40, got %v/%d", cfg.UIRateLimit, cfg.UIRateBurst)
	}
	if len(cfg.Exclude) != len(DefaultExcludes) {
		t.Errorf("expected %d default excludes, got %d", len(DefaultExcludes), len(cfg.Exclude))
	}
}

func TestDefaultConfigDoesNotShareExcludes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude[0] = "changed"
	if DefaultExcludes[0] == "changed" {
		t.Error("DefaultConfig should copy DefaultExcludes")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bistro.yml")

	original := DefaultConfig()
	original.SiteName = "Test Kitchen"
	original.OutputDir = "out"
	original.StaticDir = "assets"
	original.BaseURL = "https://example.com"
	original.Port = 9090
	original.AllowAllOrigins = true
	original.Exclude = []string{"**/*.psd", "drafts/**"}
	original.SessionTTLMinutes = 30

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.StaticDir != original.StaticDir {
		t.Errorf("static_dir: got %q, want %q", loaded.StaticDir, original.StaticDir)
	}
	if loaded.BaseURL != original.BaseURL {
		t.Errorf("base_url: got %q, want %q", loaded.BaseURL, original.BaseURL)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if loaded.SessionTTLMinutes != original.SessionTTLMinutes {
		t.Errorf("session_ttl_minutes: got %d, want %d", loaded.SessionTTLMinutes, original.SessionTTLMinutes)
	}
	if len(loaded.Exclude) != len(original.Exclude) {
		t.Fatalf("exclude length: got %d, want %d", len(loaded.Exclude), len(original.Exclude))
	}
	for i, v := range loaded.Exclude {
		if v != original.Exclude[i] {
			t.Errorf("exclude[%d]: got %q, want %q", i, v, original.Exclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "public" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("BISTRO_OUTPUT_DIR", "dist")
	t.Setenv("BISTRO_PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "dist" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "dist")
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got %d, want 3000", loaded.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("site_name: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}

	// A zero rate limit turns the cap off and needs no burst.
	cfg.UIRateLimit = 0
	cfg.UIRateBurst = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled rate limit should be valid, got: %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty site name", func(c *Config) { c.SiteName = "  " }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"relative base url", func(c *Config) { c.BaseURL = "/site" }},
		{"bad exclude", func(c *Config) { c.Exclude = []string{"[unclosed"} }},
		{"zero session ttl", func(c *Config) { c.SessionTTLMinutes = 0 }},
		{"negative rate limit", func(c *Config) { c.UIRateLimit = -1 }},
		{"rate limit without burst", func(c *Config) { c.UIRateLimit = 5; c.UIRateBurst = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.psd", []string{"**/*.psd"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
