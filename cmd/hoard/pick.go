package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick <name>",
	Short: "Emit the raw command text for shell insertion",
	Long: `Emit the raw command text of a stored entry on stdout, for
consumption by shell integration (eval, autocompletion widgets).

Only the command text goes to stdout; diagnostics go to stderr, so the
stdout channel stays safe to eval.

Example:
  eval "$(hoard pick deploy)"`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	name := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	e, ok := t.Get(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Command not found: %s\n", name)
		return nil
	}

	fmt.Println(e.Command)
	return nil
}
