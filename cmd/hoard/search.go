package main

import (
	"fmt"

	"github.com/hoard-cli/hoard/internal/config"
	"github.com/hoard-cli/hoard/internal/index"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", index.DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over stored commands",
	Long: `Full-text search over names, command text, descriptions, and tags.

The search runs against a SQLite index under the cache directory,
rebuilt automatically whenever the trove file changes. Deleting the
cache is always safe.

Examples:
  hoard search kubectl
  hoard search "apply -f" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]
	home := mustHomeDir()
	t := loadTrove(home)
	trovePath := config.TrovePath(home)

	db, err := index.Open(config.IndexPath(home))
	if err != nil {
		exitWithError(ExitError, "opening search index: %v", err)
	}
	defer db.Close()

	stale, err := db.Stale(trovePath)
	if err != nil {
		exitWithError(ExitError, "checking search index: %v", err)
	}
	if stale {
		n, err := db.Rebuild(t, trovePath)
		if err != nil {
			exitWithError(ExitError, "rebuilding search index: %v", err)
		}
		logger.Debugf("reindexed %d command(s)", n)
	}

	records, err := db.Search(query, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No commands found")
		return nil
	}
	printRecords(records)
	return nil
}
