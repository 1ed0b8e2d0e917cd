// Package main provides the hoard CLI entry point.
package main

import (
	"os"

	"github.com/hoard-cli/hoard/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// logger is the process-wide diagnostic logger. Commands print their
// user-facing messages directly; the logger carries warnings (dropped
// records on load) and the top-level failure boundary.
var logger = logging.New(logging.LevelFromString(os.Getenv("HOARD_LOG_LEVEL")))

func main() {
	// Dispatch failures never crash the process with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("An error occurred: %v", r)
			os.Exit(ExitError)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("An error occurred: %v", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hoard",
	Short: "Personal command-snippet manager",
	Long: `hoard stores named shell commands with tags and descriptions in a
local trove file (~/.hoard/trove.json by default, HOARD_HOME overrides
the directory).

Stored commands can be listed, filtered, edited, imported, exported,
and retrieved for shell autocompletion or insertion via pick.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// HOARD_HOME and EDITOR may live in a local .env file.
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.Version = Version
}
