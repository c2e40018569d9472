package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/allowlist"
	"github.com/aleyan/dela/internal/approve"
	"github.com/aleyan/dela/internal/discover"
	"github.com/aleyan/dela/internal/resolve"
)

var allowCommandValue int

// allowCommandCmd implements §4.7's allow-command: resolve NAME, consult
// the allowlist, and elicit/persist a decision when unknown (spec
// §4.6/C7).
var allowCommandCmd = &cobra.Command{
	Use:   "allow-command NAME",
	Short: "Check or grant authorization for a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAllowCommand,
}

func init() {
	allowCommandCmd.Flags().IntVar(&allowCommandValue, "allow", -1, "non-interactive choice (0-4), see spec §4.6")
}

func runAllowCommand(cmd *cobra.Command, args []string) error {
	name := args[0]

	dir, err := cwd()
	if err != nil {
		return err
	}
	dt := discover.Discover(dir)

	t, err := resolve.Resolve(dt.Tasks, name)
	if err != nil {
		return err
	}

	store, err := allowlist.OpenDefault()
	if err != nil {
		return err
	}

	var allowFlag *int
	if cmd.Flags().Changed("allow") {
		allowFlag = &allowCommandValue
	}

	return approve.Authorize(store, t, allowFlag)
}
