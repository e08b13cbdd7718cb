// Package config provides the CLI's environment-based settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. ALMANAC_WORKERS.
const Prefix = "ALMANAC"

// LogFormat is the log output encoding.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// Defaults, kept in sync with the struct tags below.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = LogFormatConsole
	DefaultWorkers   = 1
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// LogLevel is one of debug, info, warn, error.
	// Env: ALMANAC_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is console or json.
	// Env: ALMANAC_LOG_FORMAT (default: console)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"console"`

	// Workers is the number of goroutines used per table for seed ranges.
	// Env: ALMANAC_WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`
}

// LoadFromEnv loads configuration from ALMANAC_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("config: fail to process env: %w", err)
	}
	cfg.LogFormat = LogFormat(strings.ToLower(string(cfg.LogFormat)))
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file. If path is empty, ".env" in the
// current directory is used. A missing file is not an error. Variables that are
// already set are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: fail to load %s: %w", path, err)
	}
	return nil
}

// LoadConfig loads the optional .env file, then the environment, and validates
// the result.
func LoadConfig(envPath string) (EnvConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return EnvConfig{}, err
	}
	cfg, err := LoadFromEnv()
	if err != nil {
		return EnvConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

func (c EnvConfig) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
