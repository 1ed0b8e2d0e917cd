package main

import (
	"fmt"

	"github.com/hoard-cli/hoard/internal/editor"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Open a stored command in an external editor",
	Long: `Open a stored command in an external editor.

The entry is written to a scratch file, the editor (EDITOR environment
variable, global config editor, or vim) is run on it, and the entry is
replaced with the edited content once the editor exits. If the edited
content does not parse as a valid entry, the stored entry is left
unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	name := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	e, ok := t.Get(name)
	if !ok {
		fmt.Printf("Command not found: %s\n", name)
		return nil
	}

	updated, err := editor.Edit(e, editor.Resolve())
	if err != nil {
		exitWithError(ExitDataError, "editing %s: %v", name, err)
	}

	t.Set(name, updated)
	saveTrove(home, t)

	fmt.Printf("Updated command: %s\n", name)
	return nil
}
