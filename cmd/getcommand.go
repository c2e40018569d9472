package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/command"
	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/discover"
	"github.com/aleyan/dela/internal/resolve"
)

// getCommandCmd implements §4.7's get-command: resolve NAME, require
// runner_available, print build_command(task, args). It never consults
// the allowlist and never executes anything.
//
// DisableFlagParsing is set because every token after the task name is
// an opaque argument meant for the resolved runner, not a dela flag -
// the shell-integration contract (spec §6) always calls this as
// `dela get-command -- NAME [args...]`.
var getCommandCmd = &cobra.Command{
	Use:                "get-command NAME [args...]",
	Short:              "Print the shell command a task resolves to",
	DisableFlagParsing: true,
	RunE:               runGetCommand,
}

func runGetCommand(cmd *cobra.Command, rawArgs []string) error {
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

	fmt.Print(command.Build(t, trailing))
	return nil
}

// stripLeadingDashDash removes a single leading "--" token, present
// when the caller forwarded the shell-integration snippet's literal
// `get-command -- NAME [args...]` invocation (spec §6).
func stripLeadingDashDash(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}
