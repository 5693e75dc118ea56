package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"QUBIT_SEED", "QUBIT_TRIALS", "QUBIT_WORKERS", "QUBIT_LOG_LEVEL", "QUBIT_LOG_PRETTY"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUBIT_SEED", "42")
	t.Setenv("QUBIT_TRIALS", "500")
	t.Setenv("QUBIT_WORKERS", "3")
	t.Setenv("QUBIT_LOG_LEVEL", "debug")
	t.Setenv("QUBIT_LOG_PRETTY", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{Seed: 42, Trials: 500, Workers: 3, LogLevel: "debug", LogPretty: false}, cfg)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUBIT_SEED", "")
	t.Setenv("QUBIT_TRIALS", "lots")
	t.Setenv("QUBIT_WORKERS", "")
	t.Setenv("QUBIT_LOG_LEVEL", "")
	t.Setenv("QUBIT_LOG_PRETTY", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100_000, cfg.Trials)
	assert.True(t, cfg.LogPretty)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv never overrides a variable that is already set.
	t.Setenv("QUBIT_TRIALS", "")
	require.NoError(t, os.Unsetenv("QUBIT_TRIALS"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUBIT_TRIALS=77\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Trials)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero trials", func(c *Config) { c.Trials = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestFromEnvDoesNotValidate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUBIT_TRIALS", "0")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Trials)

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("QUBIT_TRIALS", "0")
	t.Setenv("QUBIT_SEED", "5")

	// An override can repair a value the environment got wrong.
	cfg, err := Load(func(c *Config) { c.Trials = 10 })
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, int64(5), cfg.Seed)

	// Overrides apply in order and are validated afterwards.
	_, err = Load(
		func(c *Config) { c.Trials = 10 },
		func(c *Config) { c.LogLevel = "loud" },
	)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
