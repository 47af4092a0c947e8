package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORGHANDBOOK_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Run.Host)
	require.Equal(t, 8000, cfg.Run.Port)
	require.Equal(t, "data/orghandbook.db", cfg.Database.URL)
	require.Equal(t, "test-key", cfg.Security.APIKey)
	require.Equal(t, "X-API-Key", cfg.Security.APIKeyHeader)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_MissingAPIKeyFails(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "security.api_key")
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orghandbook.yaml")
	content := []byte(`
run:
  host: 127.0.0.1
  port: 9000
security:
  api_key: file-key
log:
  format: console
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1", cfg.Run.Host)
	require.Equal(t, 9000, cfg.Run.Port)
	require.Equal(t, "file-key", cfg.Security.APIKey)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, "data/orghandbook.db", cfg.Database.URL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orghandbook.yaml")
	content := []byte(`
security:
  api_key: file-key
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("ORGHANDBOOK_API_KEY", "env-key")
	t.Setenv("ORGHANDBOOK_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "env-key", cfg.Security.APIKey)
	require.Equal(t, 9100, cfg.Run.Port)
}

func TestLoad_PortOutOfRange(t *testing.T) {
	t.Setenv("ORGHANDBOOK_API_KEY", "test-key")
	t.Setenv("ORGHANDBOOK_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "run.port")
}

func TestAddr(t *testing.T) {
	cfg := &Config{Run: RunConfig{Host: "127.0.0.1", Port: 8000}}
	require.Equal(t, "127.0.0.1:8000", cfg.Addr())
}
