package main

import (
	"fmt"

	"github.com/hoard-cli/hoard/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setParameterTokenCmd)
}

var setParameterTokenCmd = &cobra.Command{
	Use:   "set-parameter-token <token>",
	Short: "Set the parameter token used by shell integration",
	Long: `Set the parameter token, the placeholder string that shell
integration substitutes inside stored commands. The token is persisted
in the settings file, separate from the trove; unrelated settings keys
are preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: runSetParameterToken,
}

func runSetParameterToken(cmd *cobra.Command, args []string) error {
	token := args[0]
	home := mustHomeDir()

	if err := config.SetParameterToken(home, token); err != nil {
		exitWithError(ExitConfigError, "setting parameter token: %v", err)
	}

	fmt.Printf("Parameter token set: %s\n", token)
	return nil
}
