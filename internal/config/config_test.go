package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 20, cfg.API.ListLimit)
	assert.Equal(t, 151, cfg.API.IndexLimit)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
api:
  base_url: "http://localhost:7777"
  timeout: 5s
logging:
  development: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:7777", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Logging.Development)
	// untouched keys keep their defaults
	assert.Equal(t, 20, cfg.API.ListLimit)
	assert.Equal(t, 151, cfg.API.IndexLimit)
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokedex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: \"http://file\"\n"), 0o644))

	t.Setenv("POKEDEX_API_URL", "http://env")
	t.Setenv("POKEDEX_ADDR", ":1234")
	t.Setenv("POKEDEX_LIST_LIMIT", "5")
	t.Setenv("POKEDEX_INDEX_LIMIT", "9")
	t.Setenv("POKEDEX_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://env", cfg.API.BaseURL)
	assert.Equal(t, ":1234", cfg.Server.Addr)
	assert.Equal(t, 5, cfg.API.ListLimit)
	assert.Equal(t, 9, cfg.API.IndexLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad limit env", func(t *testing.T) {
		t.Setenv("POKEDEX_LIST_LIMIT", "many")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "POKEDEX_LIST_LIMIT")
	})

	t.Run("zero limit", func(t *testing.T) {
		t.Setenv("POKEDEX_INDEX_LIMIT", "0")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}
