package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hoard-cli/hoard/internal/trove"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Merge an exported trove file into the store",
	Long: `Merge an exported trove file into the store.

Incoming entries overwrite existing entries with the same name; entries
not present in the import file are untouched. A missing or malformed
import file leaves the store completely unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	if _, err := t.ImportMerge(path); err != nil {
		switch {
		case errors.Is(err, trove.ErrNotFound):
			fmt.Fprintf(os.Stderr, "File not found: %s\n", path)
		case errors.Is(err, trove.ErrParse):
			fmt.Fprintf(os.Stderr, "Invalid JSON in file: %s\n", path)
		default:
			fmt.Fprintf(os.Stderr, "error: importing trove: %v\n", err)
		}
		return nil
	}

	saveTrove(home, t)
	fmt.Printf("Imported trove from %s\n", path)
	return nil
}
