package xconf

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitFor 轮询等待条件成立，避免依赖固定的 sleep 时长。
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatch_ReloadOnWrite(t *testing.T) {
	path := writeTemp(t, "config.yaml", "executor:\n  workers: 2\n")
	loader, err := Load(path)
	require.NoError(t, err)

	var mu sync.Mutex
	var got *Config
	var gotErr error
	w, err := Watch(loader, func(cfg *Config, err error) {
		mu.Lock()
		got, gotErr = cfg, err
		mu.Unlock()
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	w.StartAsync()
	time.Sleep(50 * time.Millisecond) // 等待监视循环就绪

	require.NoError(t, os.WriteFile(path, []byte("executor:\n  workers: 9\n"), 0o600))

	ok := waitFor(t, 3*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return got != nil && got.Executor.Workers == 9
	})
	require.True(t, ok, "未收到重载后的配置")

	mu.Lock()
	assert.NoError(t, gotErr)
	mu.Unlock()

	cfg, err := loader.Config()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Executor.Workers)
}

func TestWatch_CallbackErrorOnInvalidConfig(t *testing.T) {
	path := writeTemp(t, "config.yaml", "executor:\n  workers: 2\n")
	loader, err := Load(path)
	require.NoError(t, err)

	var mu sync.Mutex
	var gotErr error
	w, err := Watch(loader, func(cfg *Config, err error) {
		mu.Lock()
		if err != nil {
			gotErr = err
		}
		mu.Unlock()
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	w.StartAsync()
	time.Sleep(50 * time.Millisecond)

	// workers: 0 解析成功但校验失败
	require.NoError(t, os.WriteFile(path, []byte("executor:\n  workers: 0\n"), 0o600))

	ok := waitFor(t, 3*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return gotErr != nil
	})
	require.True(t, ok, "未收到校验失败的回调")

	mu.Lock()
	assert.ErrorIs(t, gotErr, ErrInvalidConfig)
	mu.Unlock()
}

func TestWatch_BytesLoaderRejected(t *testing.T) {
	loader, err := LoadBytes([]byte("{}"), FormatJSON)
	require.NoError(t, err)

	_, err = Watch(loader, nil)
	assert.ErrorIs(t, err, ErrBytesWatch)
}

func TestWatch_NilLoader(t *testing.T) {
	_, err := Watch(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestWatcher_StopIdempotent(t *testing.T) {
	path := writeTemp(t, "config.yaml", "executor:\n  workers: 2\n")
	loader, err := Load(path)
	require.NoError(t, err)

	w, err := Watch(loader, nil)
	require.NoError(t, err)

	w.StartAsync()
	w.StartAsync() // 重复启动被忽略
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("executor:\n  workers: 2\n"), 0o600))

	loader, err := Load(path)
	require.NoError(t, err)

	var called sync.Map
	w, err := Watch(loader, func(cfg *Config, err error) {
		called.Store("hit", true)
	}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	w.StartAsync()
	time.Sleep(50 * time.Millisecond)

	// 同目录下无关文件的变更不触发重载
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1"), 0o600))
	time.Sleep(200 * time.Millisecond)

	_, hit := called.Load("hit")
	assert.False(t, hit)
}
