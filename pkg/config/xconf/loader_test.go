package xconf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
executor:
  name: orders
  workers: 8
  queue_capacity: 1024
  shutdown_grace: 30s
  drain_on_shutdown: true
retry:
  attempts: 5
  delay: 200ms
breaker:
  failure_threshold: 10
cron:
  jobs:
    - name: cleanup
      spec: "0 3 * * *"
      timeout: 10m
`

const sampleJSON = `{
  "executor": {"name": "orders", "workers": 2}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAML(t *testing.T) {
	loader, err := Load(writeTemp(t, "config.yaml", sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, loader.Format())

	cfg, err := loader.Config()
	require.NoError(t, err)
	assert.Equal(t, "orders", cfg.Executor.Name)
	assert.Equal(t, 8, cfg.Executor.Workers)
	assert.Equal(t, 1024, cfg.Executor.QueueCapacity)
	assert.Equal(t, 30*time.Second, cfg.Executor.ShutdownGrace)
	assert.True(t, cfg.Executor.DrainOnShutdown)
	assert.Equal(t, uint(5), cfg.Retry.Attempts)
	assert.Equal(t, 200*time.Millisecond, cfg.Retry.Delay)
	assert.Equal(t, uint32(10), cfg.Breaker.FailureThreshold)
	require.Len(t, cfg.Cron.Jobs, 1)
	assert.Equal(t, "cleanup", cfg.Cron.Jobs[0].Name)
	assert.Equal(t, 10*time.Minute, cfg.Cron.Jobs[0].Timeout)
}

func TestLoad_JSONWithDefaults(t *testing.T) {
	loader, err := Load(writeTemp(t, "config.json", sampleJSON))
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, loader.Format())

	cfg, err := loader.Config()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Executor.Workers)
	// 未覆盖的字段保留默认值
	assert.Equal(t, uint(3), cfg.Retry.Attempts)
	assert.Equal(t, 30*time.Second, cfg.Executor.ShutdownGrace)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Load(writeTemp(t, "config.toml", "x = 1"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	_, err = Load(writeTemp(t, "bad.yaml", "executor: [unclosed"))
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestLoad_InvalidValues(t *testing.T) {
	loader, err := Load(writeTemp(t, "config.yaml", "executor:\n  workers: 0\n"))
	require.NoError(t, err)

	_, err = loader.Config()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadBytes(t *testing.T) {
	loader, err := LoadBytes([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, loader.Path())

	cfg, err := loader.Config()
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Executor.Workers)

	assert.ErrorIs(t, loader.Reload(), ErrBytesReload)
}

func TestLoadBytes_Empty(t *testing.T) {
	loader, err := LoadBytes(nil, FormatYAML)
	require.NoError(t, err)

	cfg, err := loader.Config()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadBytes_BadFormat(t *testing.T) {
	_, err := LoadBytes([]byte("{}"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoader_Reload(t *testing.T) {
	path := writeTemp(t, "config.yaml", "executor:\n  workers: 2\n")
	loader, err := Load(path)
	require.NoError(t, err)

	cfg, err := loader.Config()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Executor.Workers)

	require.NoError(t, os.WriteFile(path, []byte("executor:\n  workers: 6\n"), 0o600))
	require.NoError(t, loader.Reload())

	cfg, err = loader.Config()
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Executor.Workers)
}

func TestLoader_ReloadKeepsOldOnParseError(t *testing.T) {
	path := writeTemp(t, "config.yaml", "executor:\n  workers: 2\n")
	loader, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("executor: [broken"), 0o600))
	require.ErrorIs(t, loader.Reload(), ErrParseFailed)

	cfg, err := loader.Config()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Executor.Workers)
}

func TestLoader_ClientCustomKeys(t *testing.T) {
	loader, err := LoadBytes([]byte("custom:\n  key: value\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "value", loader.Client().String("custom.key"))
}
