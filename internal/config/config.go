package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMirror is the Debian mirror Contents indexes are fetched from.
const DefaultMirror = "http://ftp.uk.debian.org/debian/dists/stable/main/"

// Config represents the package-statistics configuration
type Config struct {
	Mirror MirrorConfig `yaml:"mirror"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

// MirrorConfig contains mirror and download settings
type MirrorConfig struct {
	BaseURL    string `yaml:"base_url"`    // Mirror directory holding the Contents-<arch>.gz files
	Timeout    int    `yaml:"timeout"`     // Per-request timeout in seconds
	MaxRetries int    `yaml:"max_retries"` // Retry attempts after the first failed request
}

// CacheConfig contains download-cache settings
type CacheConfig struct {
	Dir string `yaml:"dir"` // Directory holding the downloaded Contents-<arch>.gz blobs
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `yaml:"level"` // Log level: debug, info, warn, error
}

// GetToolHome returns the package-statistics home directory. The
// PACKAGE_STATISTICS_HOME environment variable overrides the default of
// ~/.package-statistics.
func GetToolHome() string {
	if home := strings.TrimSpace(os.Getenv("PACKAGE_STATISTICS_HOME")); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".package-statistics"
	}
	return filepath.Join(userHome, ".package-statistics")
}

// DefaultConfig returns a default configuration rooted at home
func DefaultConfig(home string) *Config {
	return &Config{
		Mirror: MirrorConfig{
			BaseURL:    DefaultMirror,
			Timeout:    60,
			MaxRetries: 3,
		},
		Cache: CacheConfig{
			Dir: filepath.Join(home, "downloads"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a file, applying defaults for missing values
func Load(path, home string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	def := DefaultConfig(home)
	if cfg.Mirror.BaseURL == "" {
		cfg.Mirror.BaseURL = def.Mirror.BaseURL
	}
	if cfg.Mirror.Timeout == 0 {
		cfg.Mirror.Timeout = def.Mirror.Timeout
	}
	if cfg.Mirror.MaxRetries == 0 {
		cfg.Mirror.MaxRetries = def.Mirror.MaxRetries
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = def.Cache.Dir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}

	return &cfg, nil
}

// Save writes configuration to a file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mirror.BaseURL == "" {
		return fmt.Errorf("mirror.base_url is required")
	}

	if c.Mirror.Timeout <= 0 {
		return fmt.Errorf("mirror.timeout must be positive")
	}

	if c.Mirror.MaxRetries < 0 {
		return fmt.Errorf("mirror.max_retries cannot be negative")
	}

	if c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}

	return nil
}
