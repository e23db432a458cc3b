package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gioannidis/deb-package-statistics/internal/arch"
)

var architecturesCmd = &cobra.Command{
	Use:   "architectures",
	Short: "List supported architectures",
	Long:  `Display every architecture a Contents index can be fetched for.`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range arch.List() {
			fmt.Println(name)
		}
	},
}
