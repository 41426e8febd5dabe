// ABOUTME: Environment handling for config: ${VAR} expansion and ECHOSTATUS_* overrides
// ABOUTME: Unset ${VAR} references become empty; overrides win over file values

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Environment variables that override file values.
const (
	EnvListen    = "ECHOSTATUS_LISTEN"
	EnvAPIURL    = "ECHOSTATUS_API_URL"
	EnvTimeout   = "ECHOSTATUS_TIMEOUT"
	EnvLanguage  = "ECHOSTATUS_LANG"
	EnvLogLevel  = "ECHOSTATUS_LOG_LEVEL"
	EnvCacheTTL  = "ECHOSTATUS_CACHE_TTL"
	EnvCacheSize = "ECHOSTATUS_CACHE_SIZE"
)

// ResolveEnvVars expands ${VAR} patterns in string fields of c.
func ResolveEnvVars(c *Config) {
	c.Listen = expandEnv(c.Listen)
	c.Language = expandEnv(c.Language)
	c.LogLevel = expandEnv(c.LogLevel)
	c.TimeZone = expandEnv(c.TimeZone)
	c.API.BaseURL = expandEnv(c.API.BaseURL)
	c.API.UserAgent = expandEnv(c.API.UserAgent)
	for i, ex := range c.Examples {
		c.Examples[i] = expandEnv(ex)
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

func applyEnvOverrides(c *Config) error {
	if v := os.Getenv(EnvListen); v != "" {
		c.Listen = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Language = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.API.Timeout = d
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheTTL, err)
		}
		c.Cache.TTL = d
	}
	if v := os.Getenv(EnvCacheSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCacheSize, err)
		}
		c.Cache.Size = n
	}
	return nil
}
