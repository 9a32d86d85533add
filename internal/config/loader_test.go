package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: ":8080"
  log_level: debug
search:
  language: spa
  timeout_seconds: 10
endpoints:
  vertex: https://proxy.internal/vertex-search
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "spa", cfg.Search.Language)
	assert.Equal(t, 10, cfg.Search.TimeoutSeconds)
	assert.Equal(t, "https://proxy.internal/vertex-search", cfg.Endpoints["vertex"])
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `server: {}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "eng", cfg.Search.Language)
	assert.Equal(t, 30, cfg.Search.TimeoutSeconds)
	assert.Empty(t, cfg.Server.HTTPAddr)
}

func TestLoadResolvesEnvVars(t *testing.T) {
	t.Setenv("VERTEX_BASE", "https://stage.internal/vertex")
	path := writeConfig(t, `
endpoints:
  vertex: os.environ/VERTEX_BASE
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://stage.internal/vertex", cfg.Endpoints["vertex"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: a: map")
	_, err := Load(path)
	require.Error(t, err)
}

func TestResolveEnvVar(t *testing.T) {
	t.Setenv("SOME_KEY", "resolved")
	assert.Equal(t, "resolved", ResolveEnvVar("os.environ/SOME_KEY"))
	assert.Equal(t, "plain", ResolveEnvVar("plain"))
	assert.Equal(t, "", ResolveEnvVar("os.environ/NOT_SET_ANYWHERE_12345"))
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "eng", cfg.Search.Language)
}
