package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1048576, cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "", cfg.Store.Path)
	assert.Equal(t, 8, cfg.Engine.BatchConcurrency)
	assert.Equal(t, 100, cfg.Engine.MaxBatchSize)
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("PORT", "")

	yaml := `
log:
  level: debug
  format: console
server:
  port: 9090
store:
  path: history.db
engine:
  batch_concurrency: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "history.db", cfg.Store.Path)
	assert.Equal(t, 2, cfg.Engine.BatchConcurrency)
	// Defaults still apply for unset values
	assert.Equal(t, 100, cfg.Engine.MaxBatchSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
log:
  level: debug
store:
  path: file.db
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("BENEFITS_LOG_LEVEL", "warn")
	t.Setenv("BENEFITS_STORE_PATH", "env.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "env.db", cfg.Store.Path)
}

func TestLoadPort(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PORT", "3000")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)

	t.Setenv("BENEFITS_SERVER_PORT", "4000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port, "prefixed variable wins over PORT")
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BENEFITS_ENGINE_MAX_BATCH_SIZE=7\n"), 0644))
	// Registered so the variable godotenv sets is removed after the test.
	t.Setenv("BENEFITS_ENGINE_MAX_BATCH_SIZE", "")
	require.NoError(t, os.Unsetenv("BENEFITS_ENGINE_MAX_BATCH_SIZE"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Engine.MaxBatchSize)
}

func TestLoadRejectsInvalid(t *testing.T) {
	chdirTemp(t)
	t.Setenv("BENEFITS_ENGINE_BATCH_CONCURRENCY", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
