package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Write the full trove to an external file",
	Long: `Write the entire trove, unfiltered, to an external file in the same
format as the store file. The result can be merged back with import.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	if err := t.ExportAll(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to file: %s\n", path)
		return nil
	}

	fmt.Printf("Exported trove to %s\n", path)
	return nil
}
