package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a stored command",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	if !t.Remove(name) {
		fmt.Printf("Command not found: %s\n", name)
		return nil
	}

	saveTrove(home, t)
	fmt.Printf("Removed command: %s\n", name)
	return nil
}
