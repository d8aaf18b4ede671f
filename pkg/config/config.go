// Package config loads client configuration from an optional YAML file with
// environment variable overrides. The token is a secret and only ever comes
// from the environment or an explicit flag, never from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultConfigFile is the YAML file Load looks for in the working directory.
const DefaultConfigFile = "genie.yaml"

// Config holds everything needed to talk to a workspace.
// Environment variables always override YAML values.
type Config struct {
	// Host is the workspace URL, e.g. "https://my-workspace.cloud.databricks.com".
	Host string `yaml:"host" env:"DATABRICKS_HOST" env-default:""`

	// Token is the personal access token. Secret - not in YAML.
	Token string `yaml:"-" env:"DATABRICKS_TOKEN"`

	// TimeoutSeconds bounds each HTTP round-trip.
	TimeoutSeconds int `yaml:"timeout_seconds" env:"GENIE_TIMEOUT_SECONDS" env-default:"30"`

	// Version is set at load time from the build, not from config.
	Version string `yaml:"-"`
}

// Load reads DefaultConfigFile if it exists, then applies environment
// overrides. The version parameter is injected at build time and set on the
// returned Config. Host and token are not required here; the client
// constructor rejects a missing host or token so that purely local commands
// (validate) work unconfigured.
func Load(version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		if err := cleanenv.ReadConfig(DefaultConfigFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", DefaultConfigFile, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.Host = strings.TrimRight(cfg.Host, "/")

	if cfg.TimeoutSeconds <= 0 {
		return nil, errors.New("timeout_seconds must be positive")
	}

	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
