// Package editor opens a single trove entry in an external editor.
package editor

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hoard-cli/hoard/internal/config"
	"github.com/hoard-cli/hoard/internal/trove"
)

// DefaultEditor is used when neither EDITOR nor the global config names one.
const DefaultEditor = "vim"

// Resolve returns the editor command line: the EDITOR environment
// variable, else the global config editor, else vim.
func Resolve() string {
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := config.GlobalEditor(); ed != "" {
		return ed
	}
	return DefaultEditor
}

// Edit serializes the entry to a scratch file, runs the editor on it,
// blocking until the editor exits, and returns the re-parsed entry.
// On any failure the original entry is returned untouched along with
// the error, so callers can leave the store unmodified.
//
// The editor command may carry arguments ("code --wait"); it is split
// on whitespace. A hanging editor hangs the process: this is an
// interactive tool and no timeout is applied.
func Edit(e trove.Entry, editorCmd string) (trove.Entry, error) {
	scratch, err := os.CreateTemp("", "hoard-edit-*.json")
	if err != nil {
		return e, fmt.Errorf("creating scratch file: %w", err)
	}
	path := scratch.Name()
	defer os.Remove(path)

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		scratch.Close()
		return e, fmt.Errorf("encoding entry: %w", err)
	}
	if _, err := scratch.Write(data); err != nil {
		scratch.Close()
		return e, fmt.Errorf("writing scratch file: %w", err)
	}
	if err := scratch.Close(); err != nil {
		return e, fmt.Errorf("closing scratch file: %w", err)
	}

	if err := run(editorCmd, path); err != nil {
		return e, err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return e, fmt.Errorf("reading scratch file: %w", err)
	}
	updated, err := trove.ParseEntry(edited)
	if err != nil {
		return e, err
	}
	return updated, nil
}

func run(editorCmd, path string) error {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", parts[0], err)
	}
	return nil
}
