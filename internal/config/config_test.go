package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reactor.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[simulation]
time_scale = 2.0
seed = 99

[supply]
coolant = "water"

[logging]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Simulation.TimeScale)
	assert.Equal(t, int64(99), cfg.Simulation.Seed)
	assert.Equal(t, TicksPerSecond, cfg.Simulation.TicksPerSecond, "untouched keys keep defaults")
	assert.Equal(t, "water", cfg.Supply.Coolant)
	assert.Equal(t, 1.0, cfg.Supply.FuelPerSecond)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data/saves.db", cfg.Storage.Path)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("bad syntax", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[simulation\nseed = 1"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[simulation]\ntime_scale = 0.0\n"))
		assert.ErrorContains(t, err, "time_scale")
	})
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Len(t, TimeScales, len(SpeedButtonColors))
}
