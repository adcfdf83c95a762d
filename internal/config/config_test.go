package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmehta6/wastelink/internal/matching"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.InDelta(t, 1.3, cfg.Transport.CircuityFactor, 1e-9)
	assert.InDelta(t, 45.0, cfg.Transport.CostPerKmINR, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("section replaces defaults, others untouched", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: debug
  format: console
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Format)
		// Untouched sections keep defaults.
		assert.Equal(t, "table", cfg.Output.Format)
		assert.InDelta(t, 1.3, cfg.Transport.CircuityFactor, 1e-9)
	})

	t.Run("partial weights keep remaining defaults", func(t *testing.T) {
		path := writeConfig(t, `
matching:
  weights:
    material: 0.35
    quantity: 0.15
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.InDelta(t, 0.35, cfg.Matching.Weights.Material, 1e-9)
		assert.InDelta(t, 0.15, cfg.Matching.Weights.Quantity, 1e-9)
		assert.InDelta(t, 0.20, cfg.Matching.Weights.Price, 1e-9)
	})

	t.Run("unknown top-level keys ignored", func(t *testing.T) {
		path := writeConfig(t, `
widgets:
  foo: bar
output:
  format: json
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		path := writeConfig(t, "# nothing here\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		path := writeConfig(t, "output: [unclosed\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid weights rejected at load", func(t *testing.T) {
		path := writeConfig(t, `
matching:
  weights:
    material: 0.9
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, matching.ErrWeightsSum)
	})

	t.Run("invalid output format rejected", func(t *testing.T) {
		path := writeConfig(t, "output:\n  format: xml\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("circuity below one rejected", func(t *testing.T) {
		path := writeConfig(t, "transport:\n  circuity_factor: 0.8\n")
		_, err := Load(path)
		assert.Error(t, err)
	})
}
