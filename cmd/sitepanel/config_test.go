package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flipr/sitepanel"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitepanel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("", noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, sitepanel.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/admin", cfg.UI.AdminPath)
	assert.Equal(t, 5*time.Second, cfg.UI.FlashDuration)
	assert.Equal(t, 30*time.Second, cfg.UI.RefreshInterval)
	assert.False(t, cfg.UI.ReadOnly)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
api:
  base_url: "https://api.example.com/api"
  timeout: 3s
  log_requests: true
ui:
  admin_path: /backoffice
  read_only: true
  refresh_interval: 1m
`)

	cfg, err := loadConfig(path, noEnv)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout, "unset keys keep their defaults")
	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.API.LogRequests)
	assert.Equal(t, "/backoffice", cfg.UI.AdminPath)
	assert.True(t, cfg.UI.ReadOnly)
	assert.Equal(t, time.Minute, cfg.UI.RefreshInterval)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: \":9000\"\napi:\n  base_url: http://file/api\n")
	env := map[string]string{
		"SERVER_ADDR":  ":7000",
		"API_BASE_URL": "http://env/api",
	}

	cfg, err := loadConfig(path, func(k string) string { return env[k] })
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "http://env/api", cfg.API.BaseURL)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), noEnv)
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "server: [not, a, map]"), noEnv)
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "server:\n  shutdown_timeout: 0s\n"), noEnv)
	assert.ErrorContains(t, err, "shutdown_timeout")
}

func TestApplyServeFlags(t *testing.T) {
	cfg := defaultConfig()
	cmd := serveCmd
	t.Cleanup(func() { cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false }) })

	require.NoError(t, cmd.Flags().Set("addr", ":6000"))
	require.NoError(t, cmd.Flags().Set("read-only", "true"))
	applyServeFlags(cmd, cfg)

	assert.Equal(t, ":6000", cfg.Server.Addr)
	assert.True(t, cfg.UI.ReadOnly)
	assert.Equal(t, sitepanel.DefaultBaseURL, cfg.API.BaseURL, "unset flags leave config untouched")
}
