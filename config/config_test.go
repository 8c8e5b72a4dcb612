package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.HTTP.Port)
	require.Equal(t, "data.json", cfg.Snapshot.Path)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  port: "8080"
snapshot:
  path: /var/lib/miniblog/data.json
log_level: debug
`), 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.HTTP.Port, "env overrides the file")
	require.Equal(t, "/var/lib/miniblog/data.json", cfg.Snapshot.Path)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}
