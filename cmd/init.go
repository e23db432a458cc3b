package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gioannidis/deb-package-statistics/internal/config"
)

var (
	// Config flags
	cfgMirror     string
	cfgTimeout    int
	cfgMaxRetries int
	cfgLogLevel   string
	forceInit     bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize package-statistics configuration",
	Long:  `Initialize the package-statistics configuration file and directory structure.`,
	RunE:  runInit,
}

func init() {
	// Get default config for flag defaults
	def := config.DefaultConfig("")

	initCmd.Flags().BoolVar(&forceInit, "force", false, "Force re-initialization by removing existing directory")

	initCmd.Flags().StringVar(&cfgMirror, "mirror", def.Mirror.BaseURL, "Debian mirror base URL")
	initCmd.Flags().IntVar(&cfgTimeout, "timeout", def.Mirror.Timeout, "Per-request timeout (seconds)")
	initCmd.Flags().IntVar(&cfgMaxRetries, "max-retries", def.Mirror.MaxRetries, "Download retry attempts")
	initCmd.Flags().StringVar(&cfgLogLevel, "log-level", def.Log.Level, "Log level (debug/info/warn/error)")
}

func runInit(cmd *cobra.Command, args []string) error {
	home := getToolHome()
	configPath := filepath.Join(home, "config.yml")

	// Check if already initialized
	if _, err := os.Stat(configPath); err == nil {
		if !forceInit {
			return fmt.Errorf("already initialized at %s. Use --force to re-initialize", home)
		}

		fmt.Printf("Removing existing directory at %s...\n", home)
		if err := os.RemoveAll(home); err != nil {
			return fmt.Errorf("failed to remove existing directory: %w", err)
		}
	}

	// Create directory structure
	dirs := []string{
		home,
		filepath.Join(home, "downloads"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Start with default config
	cfg := config.DefaultConfig(home)

	// Override with provided flags only
	if cmd.Flags().Changed("mirror") {
		cfg.Mirror.BaseURL = cfgMirror
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Mirror.Timeout = cfgTimeout
	}
	if cmd.Flags().Changed("max-retries") {
		cfg.Mirror.MaxRetries = cfgMaxRetries
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = cfgLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save config
	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Initialized package-statistics at %s\n", home)
	return nil
}
