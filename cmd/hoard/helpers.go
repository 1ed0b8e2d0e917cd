package main

import (
	"github.com/hoard-cli/hoard/internal/config"
	"github.com/hoard-cli/hoard/internal/trove"
)

// mustHomeDir resolves the hoard home directory or exits.
func mustHomeDir() string {
	home, err := config.HomeDir()
	if err != nil {
		exitWithError(ExitConfigError, "resolving hoard home: %v", err)
	}
	return home
}

// loadTrove loads the trove under home, logging how many malformed
// records were dropped. Load itself never fails.
func loadTrove(home string) *trove.Trove {
	path := config.TrovePath(home)
	t, dropped := trove.Load(path)
	if dropped > 0 {
		logger.Warnf("dropped %d malformed record(s) loading %s", dropped, path)
	}
	return t
}

// saveTrove persists the trove under home or exits.
func saveTrove(home string, t *trove.Trove) {
	if err := t.Save(config.TrovePath(home)); err != nil {
		exitWithError(ExitError, "saving trove: %v", err)
	}
}
