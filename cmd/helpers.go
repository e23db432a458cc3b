package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gioannidis/deb-package-statistics/internal/config"
	"github.com/gioannidis/deb-package-statistics/internal/logtrace"
)

// getToolHome returns the package-statistics home directory, honoring the
// --home flag first.
func getToolHome() string {
	if homeDir != "" {
		return homeDir
	}
	return config.GetToolHome()
}

// getConfigPath returns the config file location, honoring the --config flag.
func getConfigPath(home string) string {
	if cfgFile != "" {
		return cfgFile
	}
	return filepath.Join(home, "config.yml")
}

// loadConfig reads the config for the current invocation. A missing config
// file is not an error: the tool works out of the box with defaults.
func loadConfig() (*config.Config, error) {
	home := getToolHome()
	path := getConfigPath(home)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultConfig(home), nil
	}

	cfg, err := config.Load(path, home)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging initializes the logger from the config level, with --debug
// taking precedence.
func setupLogging(cfg *config.Config) error {
	level := cfg.Log.Level
	if debug {
		level = "debug"
	}
	return logtrace.Setup(level)
}
