package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvTheme, "")
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvLogLevel, "")
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.General.Seed = 7
	cfg.General.DefaultDays = 14
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))

	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(dir, "econopsych", "config.toml"), Path())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvTheme, "terminal")
	t.Setenv(EnvAddr, "0.0.0.0:9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), cfg.General.Seed)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
}

func TestLoadFile_IgnoresEnv(t *testing.T) {
	isolate(t)
	saved := DefaultConfig()
	saved.General.Seed = 7
	require.NoError(t, Save(saved))

	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvTheme, "terminal")

	fromFile, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, saved, fromFile)

	effective, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), effective.General.Seed)
	assert.Equal(t, "terminal", effective.Appearance.Theme)
}

func TestLoad_BadSeedEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvSeed, "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvSeed)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvTheme+"=tokyo-night\n"), 0o600))
	require.NoError(t, os.Unsetenv(EnvTheme))
	require.NoError(t, LoadDotEnv(path))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
}
