// ABOUTME: YAML configuration for the status server and CLI with built-in defaults
// ABOUTME: Load merges file values over defaults, then env overrides, then validates

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the merged configuration.
type Config struct {
	Listen      string      `yaml:"listen"`
	Language    string      `yaml:"language"`
	LogLevel    string      `yaml:"log_level"`
	TimeZone    string      `yaml:"time_zone"`
	PlayerLimit int         `yaml:"player_limit"`
	Examples    []string    `yaml:"examples"`
	API         APIConfig   `yaml:"api"`
	Cache       CacheConfig `yaml:"cache"`
}

// APIConfig configures the upstream status API.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// CacheConfig configures the lookup cache. A zero TTL disables it.
type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:      ":8080",
		Language:    "es",
		LogLevel:    "info",
		PlayerLimit: 50,
		Examples:    []string{"hypixel.net", "mc.hypixel.net", "play.cubecraft.net"},
		API: APIConfig{
			BaseURL:   "https://api.mcsrvstat.us/3/",
			Timeout:   8 * time.Second,
			UserAgent: "echostatus/1.0",
		},
		Cache: CacheConfig{
			Size: 128,
			TTL:  60 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path means DefaultConfigFile,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	ResolveEnvVars(cfg)
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would make the server misbehave.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return errors.New("listen address is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Cache.Size < 0 || c.Cache.TTL < 0 {
		return errors.New("cache size and ttl must not be negative")
	}
	if c.PlayerLimit < 0 {
		return errors.New("player_limit must not be negative")
	}
	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return fmt.Errorf("time_zone: %w", err)
		}
	}
	return nil
}

// Location returns the configured time zone, or time.Local.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
