package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://api.halobharat.in", cfg.BaseURL)
	assert.Equal(t, 15000, cfg.TimeoutMS)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestTimeout(t *testing.T) {
	cfg := &Config{TimeoutMS: 15000}
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HALOBHARAT_BASE_URL", "https://staging.halobharat.in")
	t.Setenv("HALOBHARAT_TIMEOUT_MS", "5000")
	t.Setenv("HALOBHARAT_STORAGE", StorageSQLite)

	cfg := Default()
	LoadFromEnv(cfg)

	assert.Equal(t, "https://staging.halobharat.in", cfg.BaseURL)
	assert.Equal(t, 5000, cfg.TimeoutMS)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, string(SourceEnv), cfg.Sources["base_url"])
}

func TestEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("HALOBHARAT_TIMEOUT_MS", "soon")

	cfg := Default()
	LoadFromEnv(cfg)
	assert.Equal(t, 15000, cfg.TimeoutMS)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("HALOBHARAT_BASE_URL", "https://env.halobharat.in")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(FlagOverrides{BaseURL: "https://flag.halobharat.in"})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.halobharat.in", cfg.BaseURL)
	assert.Equal(t, string(SourceFlag), cfg.Sources["base_url"])
}

func TestLoadFromGlobalFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	os.Unsetenv("HALOBHARAT_BASE_URL")

	dir := filepath.Join(configHome, "halobharat")
	require.NoError(t, os.MkdirAll(dir, 0700))
	data, _ := json.Marshal(map[string]any{
		"base_url":   "https://file.halobharat.in/",
		"timeout_ms": 20000,
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), data, 0600))

	cfg, err := Load(FlagOverrides{})
	require.NoError(t, err)

	// Trailing slash is stripped during Load.
	assert.Equal(t, "https://file.halobharat.in", cfg.BaseURL)
	assert.Equal(t, 20000, cfg.TimeoutMS)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(FlagOverrides{Storage: "punchcards"})
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "https://x.in", NormalizeBaseURL("https://x.in/"))
	assert.Equal(t, "https://x.in", NormalizeBaseURL("https://x.in"))
}
