// Package cmd wires dela's six subcommands onto a cobra root command
// (spec §4.8/C9), grounded on the teacher's cmd/root.go: a package-level
// rootCmd built in init(), global persistent flags, and an Execute()
// that wraps rootCmd.ExecuteContext with the cancellation context from
// internal/signal.
//
// One departure from the teacher's Execute() (error) shape: spec §4.8's
// exit-code table requires `run` to pass through its spawned child's
// real exit status rather than a fixed per-Kind code, so Execute here
// returns (int, error) and run.go sets runExitCode directly instead of
// returning an error.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/logging"
	"github.com/aleyan/dela/internal/signal"
)

// Version is dela's release version, threaded into cobra's --version
// output and into Sentry's release tag.
const Version = "0.1.0"

var verbose bool

// runExitCode is set by run.go's RunE when the CLI executed a child
// process whose exit status must propagate verbatim, bypassing the
// Kind-based exit code translation every other subcommand uses.
var runExitCode *int

var rootCmd = &cobra.Command{
	Use:           "dela",
	Short:         "Unify task discovery and invocation across build files",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configureShellCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCommandCmd)
	rootCmd.AddCommand(allowCommandCmd)
	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command under a SIGINT/SIGTERM-cancelling
// context and translates the result into a process exit code per spec
// §4.8/§7: `run`'s pass-through child exit status when set, else the
// error's delaerr.Kind exit code, else 0.
func Execute() (int, error) {
	runExitCode = nil
	ctx := signal.SetupSignalHandler(context.Background())
	err := rootCmd.ExecuteContext(ctx)

	if runExitCode != nil {
		return *runExitCode, err
	}
	if err == nil {
		return 0, nil
	}
	if kind, ok := delaerr.KindOf(err); ok {
		return kind.ExitCode(), err
	}
	return 1, err
}

// cwd resolves the current working directory, wrapping the stdlib error
// in dela's IoError kind.
func cwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", delaerr.Wrap(delaerr.KindIoError, err, "resolving working directory")
	}
	return dir, nil
}
