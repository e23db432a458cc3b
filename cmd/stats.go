package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gioannidis/deb-package-statistics/internal/arch"
	"github.com/gioannidis/deb-package-statistics/internal/contents"
	"github.com/gioannidis/deb-package-statistics/internal/logtrace"
	"github.com/gioannidis/deb-package-statistics/internal/statistics"
)

var (
	topFlag     string
	refreshFlag bool
)

var statsCmd = &cobra.Command{
	Use:   "stats <architecture>",
	Short: "Show the packages with the most files for an architecture",
	Long: `Download (or reuse the cached) Contents index for the given
architecture and print the packages that own the most files, one ranked row
per package.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&topFlag, "top", "10", `Number of packages to show, or "all"`)
	statsCmd.Flags().BoolVar(&refreshFlag, "refresh", false, "Re-download the index even when cached")
}

func runStats(cmd *cobra.Command, args []string) error {
	sel, err := contents.ParseSelection(topFlag)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	architecture := args[0]
	ctx := logtrace.CtxWithNewCorrelationID(context.Background())

	report, err := statistics.New(cfg).TopPackages(ctx, architecture, sel, refreshFlag)
	if err != nil {
		if errors.Is(err, arch.ErrUnsupported) {
			return fmt.Errorf("invalid or unsupported architecture: %s\n\nSupported architectures: %s",
				architecture, strings.Join(arch.List(), " "))
		}
		return err
	}

	printReport(report)
	return nil
}

// printReport renders the ranked entries as a fixed-width table.
func printReport(report *statistics.Report) {
	nameWidth := len("PACKAGE")
	countWidth := len("FILES")
	for _, entry := range report.Entries {
		if len(entry.Package) > nameWidth {
			nameWidth = len(entry.Package)
		}
		if w := len(fmt.Sprint(entry.Count)); w > countWidth {
			countWidth = w
		}
	}

	fmt.Printf("%5s  %-*s  %*s\n", "RANK", nameWidth, "PACKAGE", countWidth, "FILES")
	for i, entry := range report.Entries {
		fmt.Printf("%5d  %-*s  %*d\n", i+1, nameWidth, entry.Package, countWidth, entry.Count)
	}

	if len(report.Entries) < report.TotalPackages {
		fmt.Printf("\nShowing %d of %d packages.\n", len(report.Entries), report.TotalPackages)
	}
}
