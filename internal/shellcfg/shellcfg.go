// Package shellcfg provides the shell integration snippets printed by
// the shell-config command.
package shellcfg

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShell is returned for shells without a snippet.
var ErrUnsupportedShell = errors.New("unsupported shell")

// snippets maps shell name to the line a user adds to their shell rc.
var snippets = map[string]string{
	"bash": `eval "$(hoard shell-config bash)"`,
	"zsh":  `eval "$(hoard shell-config zsh)"`,
	"fish": `hoard shell-config fish | source`,
}

// Supported lists the shells with integration snippets.
var Supported = []string{"bash", "zsh", "fish"}

// Snippet returns the integration snippet for the given shell.
func Snippet(shell string) (string, error) {
	s, ok := snippets[shell]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
	return s, nil
}
