// Package config provides configuration management for the qubit CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration
type Config struct {
	Seed      int64 // Negative = random
	Trials    int
	Workers   int
	LogLevel  string
	LogPretty bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Seed:      -1,
		Trials:    100_000,
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogPretty: true,
	}
}

// Override changes a configuration read from the environment before it is validated.
type Override func(*Config)

// Load reads configuration from environment variables, applies the overrides
// in order and validates the result.
func Load(overrides ...Override) (*Config, error) {
	cfg := FromEnv()
	for _, o := range overrides {
		o(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads configuration from the environment and an optional .env file
// without validating it.
func FromEnv() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	def := Default()
	return &Config{
		Seed:      getEnvAsInt64("QUBIT_SEED", def.Seed),
		Trials:    getEnvAsInt("QUBIT_TRIALS", def.Trials),
		Workers:   getEnvAsInt("QUBIT_WORKERS", def.Workers),
		LogLevel:  getEnv("QUBIT_LOG_LEVEL", def.LogLevel),
		LogPretty: getEnvAsBool("QUBIT_LOG_PRETTY", def.LogPretty),
	}
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be > 0, got %d", ErrInvalidConfig, c.Trials)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: workers must be > 0, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
