package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-1.5-flash"}, cfg.GeminiModels)
	assert.InDelta(t, 0.7, cfg.Temperature, 0.001)
	assert.False(t, cfg.SkipChecks)
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
database_path: /tmp/sleepmesh.db
gemini_models:
  - gemini-2.5-pro
temperature: 0.2
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/sleepmesh.db", cfg.DatabasePath)
	assert.Equal(t, []string{"gemini-2.5-pro"}, cfg.GeminiModels)
	assert.InDelta(t, 0.2, cfg.Temperature, 0.001)
	assert.Equal(t, "json", cfg.LogFormat, "unset keys keep their defaults")
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o600))

	t.Setenv("SLEEPMESH_LOG_LEVEL", "error")
	t.Setenv("SLEEPMESH_SKIP_CHECKS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.SkipChecks)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [broken"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}
