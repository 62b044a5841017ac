// Relevia Go SDK - Recommendation Service Client
// Copyright 2026 Relevia Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/relevia/relevia-go

// Package config loads the relevia-cli configuration with Koanf v2 using
// layered sources (highest priority wins):
//
//  1. Built-in defaults
//  2. Optional YAML config file (relevia.yaml, or RELEVIA_CONFIG path)
//  3. RELEVIA_-prefixed environment variables
//
// Examples:
//
//	RELEVIA_API_KEY=sk-...           -> api_key
//	RELEVIA_PROJECT_ID=my-project    -> project_id
//	RELEVIA_LOGGING__LEVEL=debug     -> logging.level
//
// Library consumers never touch this package; the SDK is configured purely
// through relevia.Config at construction.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"relevia.yaml",
	"relevia.yml",
}

// ConfigPathEnvVar is the environment variable that overrides the config
// file path.
const ConfigPathEnvVar = "RELEVIA_CONFIG"

// envPrefix namespaces the CLI's environment variables.
const envPrefix = "RELEVIA_"

// Config holds the relevia-cli settings.
type Config struct {
	// APIKey authenticates against the Relevia API. Required.
	APIKey string `koanf:"api_key"`

	// ProjectID selects the project; composes the canonical endpoint when
	// BaseURL is unset.
	ProjectID string `koanf:"project_id"`

	// BaseURL overrides the endpoint entirely (wins over ProjectID).
	BaseURL string `koanf:"base_url"`

	// Timeout bounds each request. Zero uses the SDK default.
	Timeout time.Duration `koanf:"timeout"`

	Logging LoggingConfig `koanf:"logging"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns a Config with all default values. These are applied
// first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the layered configuration: defaults, then an optional YAML
// file, then RELEVIA_ environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// RELEVIA_API_KEY -> api_key, RELEVIA_LOGGING__LEVEL -> logging.level.
	// The double underscore separates nesting levels so that single
	// underscores survive inside key names.
	envProvider := env.Provider(envPrefix, ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, honoring ConfigPathEnvVar
// before the default paths. Returns empty string when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
