package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"go.uber.org/zap/zapcore"
)

const (
	// GlobalArgsEnv carries the orchestrator's argument string.
	GlobalArgsEnv = "UBER_GLOBAL_COMMAND_ARGS"
	// LogLevelEnv selects the diagnostic log level.
	LogLevelEnv = "ENV_SETUP_LOG_LEVEL"

	defaultLogLevel = "info"
)

// Config aggregates runtime configuration resolved from multiple sources.
type Config struct {
	GlobalCommandArgs string
	LogLevel          string
}

// envConfig mirrors the environment variables read at startup.
type envConfig struct {
	GlobalCommandArgs string `env:"UBER_GLOBAL_COMMAND_ARGS"`
	LogLevel          string `env:"ENV_SETUP_LOG_LEVEL"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	GlobalArgs *string
	LogLevel   *string
}

// Load extracts configuration with precedence:
// CLI flags > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := Defaults()

	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: defaultLogLevel,
	}
}

// applyEnvConfig applies environment variable configuration. A missing
// argument string stays empty; an unusable log level keeps the default.
func applyEnvConfig(cfg *Config) error {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	cfg.GlobalCommandArgs = ec.GlobalCommandArgs

	if level := strings.TrimSpace(ec.LogLevel); level != "" {
		if _, err := zapcore.ParseLevel(level); err == nil {
			cfg.LogLevel = level
		}
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.GlobalArgs != nil && *overrides.GlobalArgs != "" {
		cfg.GlobalCommandArgs = *overrides.GlobalArgs
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return nil
}
