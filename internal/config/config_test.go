package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "SERVER_HOST", "SERVER_PORT",
		"SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_MAX_CONN",
		"REQUEST_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS", "LOG_LEVEL", "LOG_ENCODING",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadFileDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "tasklist", cfg.AppName)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "0.0.0.0:8080", cfg.Address())
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, 120*time.Second, cfg.HTTP.IdleTimeout)
	require.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	require.Equal(t, 15*time.Second, cfg.Context.ShutdownTimeout)
	require.Equal(t, "info", cfg.Logger.Level)
	require.Equal(t, "console", cfg.Logger.Encoding)
}

func TestLoadFileEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "1500ms")
	t.Setenv("SERVER_MAX_CONN", "not-a-number")
	t.Setenv("LOG_ENCODING", "console")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.HTTP.Port)
	require.Equal(t, 3*time.Second, cfg.Context.RequestTimeout)
	require.Equal(t, 1500*time.Millisecond, cfg.Context.ShutdownTimeout)
	require.Zero(t, cfg.HTTP.MaxConn)
	require.Equal(t, "console", cfg.Logger.Encoding)
}

func TestLoadFileReadsDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=todo\nAPP_ENV=production\nLOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "todo", cfg.AppName)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, "json", cfg.Logger.Encoding)
}

func TestLoadFileRejectsInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "http")

	_, err := LoadFile("")
	require.Error(t, err)
}

func TestMustLoadPanicsOnInvalidConfig(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NotPanics(t, func() { MustLoad() })

	t.Setenv("SERVER_PORT", "http")
	require.Panics(t, func() { MustLoad() })
}
