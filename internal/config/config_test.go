package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	require.Equal(t, "transport_data.json", cfg.Output.JSONPath)
	require.Equal(t, "transport_data.xml", cfg.Output.XMLPath)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  json_path: out/data.json
  xml_path: out/data.xml
log:
  level: debug
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "out/data.json", cfg.Output.JSONPath)
	require.Equal(t, "out/data.xml", cfg.Output.XMLPath)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_envOverridesFile(t *testing.T) {
	t.Setenv("REGISTRY_OUTPUT_JSON_PATH", "env/data.json")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  json_path: file/data.json
`), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "env/data.json", cfg.Output.JSONPath)
	require.Equal(t, "transport_data.xml", cfg.Output.XMLPath)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("REGISTRY_LOG_LEVEL", "warn")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_malformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`output: [`), 0600))

	_, err := Load(path)
	require.Error(t, err)
}
