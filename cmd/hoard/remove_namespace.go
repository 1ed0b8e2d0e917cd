package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeNamespaceCmd)
}

var removeNamespaceCmd = &cobra.Command{
	Use:   "remove-namespace <namespace>",
	Short: "Remove all commands whose name starts with a prefix",
	Long: `Remove all commands whose name starts with the given prefix.

The match is a case-sensitive exact prefix: "foo" removes "foo" and
"foo-bar" but not "xfoo".`,
	Args: cobra.ExactArgs(1),
	RunE: runRemoveNamespace,
}

func runRemoveNamespace(cmd *cobra.Command, args []string) error {
	namespace := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	if n := t.RemoveNamespace(namespace); n > 0 {
		saveTrove(home, t)
	}

	fmt.Printf("Removed namespace: %s\n", namespace)
	return nil
}
