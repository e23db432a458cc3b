package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gioannidis/deb-package-statistics/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage downloaded Contents indexes",
	Long:  `Inspect or clear the on-disk cache of downloaded Contents indexes.`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached Contents indexes",
	RunE:  runCacheList,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all cached Contents indexes",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func newStore() (*cache.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cache.NewStore(cfg.Cache.Dir), nil
}

func runCacheList(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	entries, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list cache: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No cached Contents indexes.")
		return nil
	}

	fmt.Printf("Cached Contents indexes in %s:\n", store.Dir())
	for _, entry := range entries {
		fmt.Printf("  %s\n", entry.Architecture)
		fmt.Printf("    Size: %.2f MB\n", float64(entry.Size)/(1024*1024))
		fmt.Printf("    Modified: %s\n", entry.Modified.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	removed, err := store.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Printf("Removed %d cached index(es).\n", removed)
	return nil
}
