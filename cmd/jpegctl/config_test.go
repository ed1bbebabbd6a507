package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenNoPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, 8, cfg.PreviewBytes)
	require.True(t, cfg.ShowOffsets)
	require.Empty(t, cfg.LogLevel)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
preview_bytes = 16
show_offsets = false
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.PreviewBytes)
	require.False(t, cfg.ShowOffsets)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "warn"`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.PreviewBytes)
	require.True(t, cfg.ShowOffsets)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigRejectsNegativePreview(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`preview_bytes = -1`), 0o644))

	_, err := loadConfig(path)
	require.ErrorContains(t, err, "preview_bytes")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
