package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level: info\n")

	initial, err := NewLoader(path).Load()
	require.NoError(t, err)

	w, err := newWatcher(path, initial, zap.NewNop(), 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()
	require.True(t, w.Enabled())

	changed := make(chan *Config, 1)
	w.OnChange(func(cfg *Config) {
		select {
		case changed <- cfg:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o600))

	select {
	case cfg := <-changed:
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "debug", w.Config().LogLevel)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcher_IgnoresInvalidReload(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level: info\n")

	initial, err := NewLoader(path).Load()
	require.NoError(t, err)

	w, err := newWatcher(path, initial, zap.NewNop(), 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Stop()

	called := make(chan struct{}, 1)
	w.OnChange(func(*Config) { called <- struct{}{} })

	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o600))

	select {
	case <-called:
		t.Fatal("callback ran for an invalid configuration")
	case <-time.After(200 * time.Millisecond):
	}
	assert.Same(t, initial, w.Config())
}

func TestWatcher_DisabledOutsideDevelopment(t *testing.T) {
	cfg := Default()
	cfg.Environment = Production

	w, err := NewWatcher("figures.yaml", cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, w.Enabled())
	w.Stop()

	w, err = NewWatcher("", Default(), zap.NewNop())
	require.NoError(t, err)
	assert.False(t, w.Enabled())
	assert.NotNil(t, w.Config())
}

func TestSameSettings(t *testing.T) {
	a, b := Default(), Default()
	a.LoadedFrom = []string{"defaults"}
	b.LoadedFrom = []string{"defaults", "x.yaml"}
	assert.True(t, sameSettings(a, b))

	b.LogLevel = "warn"
	assert.False(t, sameSettings(a, b))
}
