// Package approve implements the approval prompt and non-interactive
// overrides from spec §4.6/C7, sitting on top of internal/allowlist's
// pure is_allowed decision function (C6).
package approve

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/aleyan/dela/internal/allowlist"
	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/task"
	"github.com/aleyan/dela/internal/tui"
)

// Choice numbering matches the five options in spec §4.6 exactly, so
// --allow N and the interactive prompt's result share one vocabulary.
const (
	ChoiceAllowOnce      = 0
	ChoiceAllowTask      = 1
	ChoiceAllowFile      = 2
	ChoiceAllowDirectory = 3
	ChoiceDeny           = 4
)

// Stdin is the TTY check target, overridable in tests.
var Stdin = os.Stdin

// Authorize resolves whether t may run, consulting the allowlist first
// and falling back to elicitation (interactive prompt, --allow N, or the
// DELA_AUTO_ALLOW/DELA_NON_INTERACTIVE env overrides) only when the
// allowlist has no opinion (spec §4.6/§4.7's allow-command contract).
//
// allowFlag is nil when the caller did not pass --allow. Returns nil on
// Allow, a *delaerr.Error of KindDenied on Deny, and KindRequiresApproval
// when non-interactive elicitation has nothing to go on.
func Authorize(store *allowlist.Store, t task.Task, allowFlag *int) error {
	switch store.Decide(t.FilePath, t.SourceName) {
	case allowlist.Allow:
		return nil
	case allowlist.Deny:
		return delaerr.New(delaerr.KindDenied, "task %q is denied by the allowlist", t.SourceName)
	}

	choice, cancelled, err := elicit(t, allowFlag)
	if err != nil {
		return err
	}
	if cancelled {
		return delaerr.New(delaerr.KindDenied, "approval cancelled")
	}
	return apply(store, t, choice)
}

// elicit determines the user's choice via (in priority order) an
// explicit --allow flag, the DELA_AUTO_ALLOW env var, or an interactive
// prompt; it returns a RequiresApproval error when none apply (spec
// §4.6's non-interactive contract).
func elicit(t task.Task, allowFlag *int) (choice int, cancelled bool, err error) {
	if allowFlag != nil {
		return *allowFlag, false, nil
	}

	if os.Getenv("DELA_AUTO_ALLOW") == "1" {
		return ChoiceAllowFile, false, nil
	}

	nonInteractive := os.Getenv("DELA_NON_INTERACTIVE") != ""
	if nonInteractive || !isatty.IsTerminal(Stdin.Fd()) {
		return 0, false, delaerr.New(delaerr.KindRequiresApproval,
			"task %q requires approval: pass --allow N or set DELA_AUTO_ALLOW=1", t.SourceName)
	}

	fmt.Fprintln(os.Stderr, "dela: task requires approval")

	model := tui.NewApprovePromptModel(t.SourceName, t.FilePath, filepath.Dir(t.FilePath))
	program := tea.NewProgram(model)
	if _, runErr := program.Run(); runErr != nil {
		return 0, false, delaerr.Wrap(delaerr.KindIoError, runErr, "approval prompt failed")
	}

	result := model.GetResult()
	if result == nil || result.Cancelled {
		return 0, true, nil
	}
	return result.Choice, false, nil
}

// apply persists choice (except AllowOnce, which is ephemeral) and
// returns the resulting error, if any (spec §4.6).
func apply(store *allowlist.Store, t task.Task, choice int) error {
	switch choice {
	case ChoiceAllowOnce:
		return nil
	case ChoiceAllowTask:
		return store.Add(allowlist.Entry{Path: t.FilePath, Scope: allowlist.ScopeTask, Tasks: []string{t.SourceName}})
	case ChoiceAllowFile:
		return store.Add(allowlist.Entry{Path: t.FilePath, Scope: allowlist.ScopeFile})
	case ChoiceAllowDirectory:
		return store.Add(allowlist.Entry{Path: filepath.Dir(t.FilePath), Scope: allowlist.ScopeDirectory})
	case ChoiceDeny:
		if err := store.Add(allowlist.Entry{Path: t.FilePath, Scope: allowlist.ScopeDeny}); err != nil {
			return err
		}
		return delaerr.New(delaerr.KindDenied, "task %q denied", t.SourceName)
	default:
		return delaerr.New(delaerr.KindRequiresApproval, "invalid --allow value %d", choice)
	}
}
