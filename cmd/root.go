package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version info passed from main
	appVersion   string
	appGitCommit string
	appBuildTime string

	// Global flags
	homeDir string
	cfgFile string
	debug   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "package-statistics",
	Short: "Debian package statistics from Contents indexes",
	Long: `package-statistics downloads the Debian Contents index for an
architecture, counts how many files each package owns, and reports the
packages with the most associated files.

Downloaded indexes are cached under the tool home so repeated runs for the
same architecture skip the mirror.`,
}

// Execute adds all child commands and executes the root command
func Execute(ver, commit, built string) error {
	appVersion = ver
	appGitCommit = commit
	appBuildTime = built

	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "Tool home directory (default: ~/.package-statistics)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: <home>/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Add all subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(architecturesCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for package-statistics.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Package-Statistics Version: %s\n", appVersion)
		fmt.Printf("Git Commit: %s\n", appGitCommit)
		fmt.Printf("Build Time: %s\n", appBuildTime)
	},
}
