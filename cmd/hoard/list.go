package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	listFilter string
	listJSON   bool
	listSimple bool
)

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "", "Keep only entries whose name or tags contain this substring")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as a JSON array")
	listCmd.Flags().BoolVar(&listSimple, "simple", false, "Output bare names, one per line")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored commands",
	Long: `List stored commands in insertion order.

The filter is a case-insensitive substring match against names and tags.

Examples:
  hoard list
  hoard list --filter git
  hoard list --simple
  hoard list --json`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	home := mustHomeDir()
	t := loadTrove(home)

	switch {
	case listJSON:
		out, err := t.ListJSON(listFilter)
		if err != nil {
			exitWithError(ExitError, "listing commands: %v", err)
		}
		fmt.Println(out)
	case listSimple:
		fmt.Println(t.ListSimple(listFilter))
	default:
		printRecords(t.Records(listFilter))
	}
	return nil
}
