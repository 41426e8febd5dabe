// ABOUTME: Tests for config loading: defaults, YAML file values, overrides, validation
// ABOUTME: Uses t.TempDir and t.Setenv; environment-mutating tests are not parallel

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Default()
	if cfg.Listen != want.Listen || cfg.API.BaseURL != want.API.BaseURL || cfg.API.Timeout != 8*time.Second {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Cache.Size != 128 || cfg.Cache.TTL != time.Minute {
		t.Errorf("unexpected cache defaults: %+v", cfg.Cache)
	}
	if len(cfg.Examples) != 3 || cfg.Examples[0] != "hypixel.net" {
		t.Errorf("unexpected examples: %v", cfg.Examples)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
listen: "127.0.0.1:9000"
language: en
player_limit: 20
examples: [play.example.net]
api:
  base_url: "http://localhost:7777/3/"
  timeout: 3s
cache:
  size: 4
  ttl: 2m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Listen != "127.0.0.1:9000" || cfg.Language != "en" || cfg.PlayerLimit != 20 {
		t.Errorf("unexpected top-level values: %+v", cfg)
	}
	if cfg.API.Timeout != 3*time.Second || cfg.API.BaseURL != "http://localhost:7777/3/" {
		t.Errorf("unexpected api values: %+v", cfg.API)
	}
	if cfg.API.UserAgent != "echostatus/1.0" {
		t.Errorf("unset keys should keep defaults, got user agent %q", cfg.API.UserAgent)
	}
	if cfg.Cache.Size != 4 || cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("unexpected cache values: %+v", cfg.Cache)
	}
	if len(cfg.Examples) != 1 || cfg.Examples[0] != "play.example.net" {
		t.Errorf("unexpected examples: %v", cfg.Examples)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "listen: [unterminated")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "listen: \":9000\"\n")
	t.Setenv(EnvListen, ":7000")
	t.Setenv(EnvAPIURL, "http://127.0.0.1:1/")
	t.Setenv(EnvTimeout, "1500ms")
	t.Setenv(EnvLanguage, "en")
	t.Setenv(EnvCacheSize, "0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Listen != ":7000" || cfg.API.BaseURL != "http://127.0.0.1:1/" || cfg.Language != "en" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.API.Timeout != 1500*time.Millisecond {
		t.Errorf("timeout = %s", cfg.API.Timeout)
	}
	if cfg.Cache.Size != 0 {
		t.Errorf("cache size = %d", cfg.Cache.Size)
	}
}

func TestLoadBadEnvOverride(t *testing.T) {
	path := writeConfig(t, "")
	t.Setenv(EnvTimeout, "soon")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), EnvTimeout) {
		t.Fatalf("expected timeout override error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen", func(c *Config) { c.Listen = " " }},
		{"bad base url", func(c *Config) { c.API.BaseURL = "ftp://x" }},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }},
		{"negative cache", func(c *Config) { c.Cache.Size = -1 }},
		{"negative player limit", func(c *Config) { c.PlayerLimit = -5 }},
		{"unknown time zone", func(c *Config) { c.TimeZone = "Mars/Olympus" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLocation(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Location() != time.Local {
		t.Error("empty time zone should use time.Local")
	}
	cfg.TimeZone = "UTC"
	if cfg.Location().String() != "UTC" {
		t.Errorf("Location() = %v", cfg.Location())
	}
}
