package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newTags        []string
	newCommand     string
	newDescription string
)

func init() {
	newCmd.Flags().StringSliceVar(&newTags, "tags", nil, "Tags for the new command")
	newCmd.Flags().StringVar(&newCommand, "command", "", "The command to store")
	newCmd.Flags().StringVar(&newDescription, "description", "", "Description of the command")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Store a new command under a name",
	Long: `Store a new command under a name. An existing entry with the same
name is overwritten.

Example:
  hoard new deploy --tags ops,release --command "kubectl apply -f prod.yaml" --description "deploy to prod"`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	home := mustHomeDir()
	t := loadTrove(home)

	t.Add(name, newTags, newCommand, newDescription)
	saveTrove(home, t)

	fmt.Printf("Added new command: %s\n", name)
	return nil
}
