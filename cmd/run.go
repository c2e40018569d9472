package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/allowlist"
	"github.com/aleyan/dela/internal/approve"
	"github.com/aleyan/dela/internal/command"
	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/discover"
	"github.com/aleyan/dela/internal/procexec"
	"github.com/aleyan/dela/internal/resolve"
)

// runCmd implements §4.7's `run`: allow-command semantics followed by
// get-command synthesis, then spawns the built command through the
// user's shell, propagating its exit status (spec §4.7/§5).
var runCmd = &cobra.Command{
	Use:                "run NAME [args...]",
	Short:              "Authorize and execute a task",
	DisableFlagParsing: true,
	RunE:               runRun,
}

func runRun(cmd *cobra.Command, rawArgs []string) error {
	args := stripLeadingDashDash(rawArgs)
	if len(args) == 0 {
		return delaerr.New(delaerr.KindNotFound, "task name required")
	}
	name, trailing := args[0], args[1:]

	dir, err := cwd()
	if err != nil {
		return err
	}
	dt := discover.Discover(dir)

	t, err := resolve.Resolve(dt.Tasks, name)
	if err != nil {
		return err
	}
	if !t.RunnerAvailable {
		return delaerr.New(delaerr.KindRunnerUnavailable, "runner %q is not installed", t.Runner.ShortName())
	}

	store, err := allowlist.OpenDefault()
	if err != nil {
		return err
	}
	if err := approve.Authorize(store, t, nil); err != nil {
		return err
	}

	built := command.Build(t, trailing)

	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	code, err := procexec.Run(shellPath, built)
	if err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "spawning %s", t.Runner.ShortName())
	}
	runExitCode = &code
	return nil
}
