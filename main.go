// Command dela is a developer-workstation CLI that unifies task
// discovery and invocation across heterogeneous build/task definition
// files (spec.md §1).
package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/aleyan/dela/cmd"
	"github.com/aleyan/dela/internal/sentry"
	"github.com/aleyan/dela/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// IMPORTANT: Defer order matters! Defers execute in LIFO order.
	// RecoverAndPanic must be deferred FIRST so it executes LAST,
	// allowing cleanup() to flush events before the re-panic.
	defer sentry.RecoverAndPanic()
	cleanup := sentry.Init(cmd.Version)
	defer cleanup()

	code, err := cmd.Execute()
	if err != nil {
		sentry.CaptureError(err)
		errMsg := err.Error()
		if errMsg != "" {
			runes := []rune(errMsg)
			runes[0] = unicode.ToUpper(runes[0])
			errMsg = string(runes)
		}
		fmt.Fprintln(os.Stderr, tui.ExitError(errMsg))
	}
	return code
}
