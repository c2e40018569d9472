package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/shellintegration"
)

// configureShellCmd implements §4.8's configure-shell: print the
// static, shell-specific integration snippet selected by $SHELL's
// basename.
var configureShellCmd = &cobra.Command{
	Use:   "configure-shell",
	Short: "Print the shell integration snippet for $SHELL",
	Args:  cobra.NoArgs,
	RunE:  runConfigureShell,
}

func runConfigureShell(cmd *cobra.Command, args []string) error {
	shell, err := shellintegration.FromEnv()
	if err != nil {
		return err
	}
	snippet, err := shellintegration.Snippet(shell)
	if err != nil {
		return err
	}
	fmt.Println(snippet)
	return nil
}
