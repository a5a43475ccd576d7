package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "graindb.db", cfg.Storage.File)
	require.Equal(t, 64, cfg.Storage.PoolSize)
	require.Equal(t, 2, cfg.Storage.K)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graindb.yaml")
	content := "storage:\n  file: custom.db\n  pool_size: 128\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "custom.db", cfg.Storage.File)
	require.Equal(t, 128, cfg.Storage.PoolSize)
	require.Equal(t, 2, cfg.Storage.K) // unset, falls back to default
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
