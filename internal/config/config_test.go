package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	require.NotEmpty(t, cfg.Sources.PrimaryURL)
	require.NotEmpty(t, cfg.Sources.SecondaryURL)
	require.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FileOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("PRIMARY_FEED_URL", "https://feeds.test/primary.json")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
sources:
  primary_url: ${PRIMARY_FEED_URL}
  secondary_url: https://feeds.test/secondary.json
http:
  timeout: 5s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "https://feeds.test/primary.json", cfg.Sources.PrimaryURL)
	require.Equal(t, "https://feeds.test/secondary.json", cfg.Sources.SecondaryURL)
	require.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: ["), 0o600))

	_, err := Load(path)

	require.Error(t, err)
	require.Contains(t, err.Error(), "parse config")
}
