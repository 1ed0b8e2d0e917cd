package main

import (
	"fmt"

	"github.com/hoard-cli/hoard/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the trove location and entry count",
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	home := mustHomeDir()
	t := loadTrove(home)

	fmt.Printf("Trove path: %s\n", config.TrovePath(home))
	fmt.Printf("Number of commands: %d\n", t.Len())
	return nil
}
