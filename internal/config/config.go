// Package config provides layered configuration loading.
// Precedence: flags > env > global config file > defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage backend names.
const (
	StorageFile    = "file"
	StorageKeyring = "keyring"
	StorageSQLite  = "sqlite"
)

// Config holds the resolved configuration.
type Config struct {
	// API settings
	BaseURL   string `json:"base_url"`
	TimeoutMS int    `json:"timeout_ms"`

	// Credential storage settings
	Storage    string `json:"storage"`
	StorageDir string `json:"storage_dir"`

	// Logging
	LogLevel string `json:"log_level"`

	// Sources tracks where each value came from (for debugging).
	Sources map[string]string `json:"-"`
}

// Source indicates where a config value came from.
type Source string

const (
	SourceDefault Source = "default"
	SourceGlobal  Source = "global"
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)

// FlagOverrides holds command-line flag values.
type FlagOverrides struct {
	BaseURL    string
	Storage    string
	StorageDir string
	LogLevel   string
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		BaseURL:    "https://api.halobharat.in",
		TimeoutMS:  15000,
		Storage:    StorageFile,
		StorageDir: GlobalConfigDir(),
		LogLevel:   "warn",
		Sources:    make(map[string]string),
	}
}

// Load loads configuration from all sources with proper precedence.
func Load(overrides FlagOverrides) (*Config, error) {
	cfg := Default()

	loadFromFile(cfg, globalConfigPath())
	LoadFromEnv(cfg)
	ApplyOverrides(cfg, overrides)

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)
	if cfg.TimeoutMS <= 0 {
		cfg.TimeoutMS = 15000
	}
	switch cfg.Storage {
	case StorageFile, StorageKeyring, StorageSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (cfg *Config) Timeout() time.Duration {
	return time.Duration(cfg.TimeoutMS) * time.Millisecond
}

func loadFromFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist, skip
	}

	var fileCfg map[string]any
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: skipping malformed config at %s: %v\n", path, err)
		return
	}

	if v, ok := fileCfg["base_url"].(string); ok && v != "" {
		cfg.BaseURL = v
		cfg.Sources["base_url"] = string(SourceGlobal)
	}
	if v, ok := fileCfg["timeout_ms"].(float64); ok && v > 0 {
		cfg.TimeoutMS = int(v)
		cfg.Sources["timeout_ms"] = string(SourceGlobal)
	}
	if v, ok := fileCfg["storage"].(string); ok && v != "" {
		cfg.Storage = v
		cfg.Sources["storage"] = string(SourceGlobal)
	}
	if v, ok := fileCfg["storage_dir"].(string); ok && v != "" {
		cfg.StorageDir = v
		cfg.Sources["storage_dir"] = string(SourceGlobal)
	}
	if v, ok := fileCfg["log_level"].(string); ok && v != "" {
		cfg.LogLevel = v
		cfg.Sources["log_level"] = string(SourceGlobal)
	}
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("HALOBHARAT_BASE_URL"); v != "" {
		cfg.BaseURL = v
		cfg.Sources["base_url"] = string(SourceEnv)
	}
	if v := os.Getenv("HALOBHARAT_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMS = ms
			cfg.Sources["timeout_ms"] = string(SourceEnv)
		}
	}
	if v := os.Getenv("HALOBHARAT_STORAGE"); v != "" {
		cfg.Storage = v
		cfg.Sources["storage"] = string(SourceEnv)
	}
	if v := os.Getenv("HALOBHARAT_STORAGE_DIR"); v != "" {
		cfg.StorageDir = v
		cfg.Sources["storage_dir"] = string(SourceEnv)
	}
	if v := os.Getenv("HALOBHARAT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		cfg.Sources["log_level"] = string(SourceEnv)
	}
}

// ApplyOverrides applies non-empty flag overrides to cfg.
func ApplyOverrides(cfg *Config, o FlagOverrides) {
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
		cfg.Sources["base_url"] = string(SourceFlag)
	}
	if o.Storage != "" {
		cfg.Storage = o.Storage
		cfg.Sources["storage"] = string(SourceFlag)
	}
	if o.StorageDir != "" {
		cfg.StorageDir = o.StorageDir
		cfg.Sources["storage_dir"] = string(SourceFlag)
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
		cfg.Sources["log_level"] = string(SourceFlag)
	}
}

// Path helpers

func globalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.json")
}

// GlobalConfigDir returns the global config directory path.
func GlobalConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "halobharat")
}

// NormalizeBaseURL ensures consistent URL format (no trailing slash).
func NormalizeBaseURL(url string) string {
	return strings.TrimSuffix(url, "/")
}
