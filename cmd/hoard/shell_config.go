package main

import (
	"fmt"

	"github.com/hoard-cli/hoard/internal/shellcfg"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shellConfigCmd)
}

var shellConfigCmd = &cobra.Command{
	Use:   "shell-config <shell>",
	Short: "Print the shell integration snippet",
	Long: `Print the integration snippet for a shell (bash, zsh, or fish),
suitable for adding to the shell's rc file.`,
	Args: cobra.ExactArgs(1),
	RunE: runShellConfig,
}

func runShellConfig(cmd *cobra.Command, args []string) error {
	shell := args[0]

	snippet, err := shellcfg.Snippet(shell)
	if err != nil {
		fmt.Printf("Unsupported shell: %s\n", shell)
		return nil
	}

	fmt.Println(snippet)
	return nil
}
