// Package detector provides environment detection for console output
// decisions.
package detector

import (
	"os"

	"golang.org/x/term"
)

// InteractiveTerminal reports whether stdout is a TTY outside a CI
// environment. Non-interactive runs skip the progress recording.
func InteractiveTerminal() bool {
	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
