package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hoard-cli/hoard/internal/trove"
)

// Command truncation length for the aligned list/search views.
const ListCommandMaxLen = 60

// exitWithError prints a diagnostic to stderr and exits with code.
func exitWithError(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// printRecords renders records in the aligned human-readable view used
// by list and search.
func printRecords(records []trove.Record) {
	for _, r := range records {
		tags := ""
		if len(r.Tags) > 0 {
			tags = " [" + strings.Join(r.Tags, ", ") + "]"
		}
		fmt.Printf("%s%s\n", r.Name, tags)
		fmt.Printf("    %s\n", truncateString(r.Command, ListCommandMaxLen))
		if r.Description != "" {
			fmt.Printf("    %s\n", r.Description)
		}
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
