package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/discover"
	"github.com/aleyan/dela/internal/listing"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Discover tasks in the current directory and print them",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	dir, err := cwd()
	if err != nil {
		return err
	}

	dt := discover.Discover(dir)
	listing.Render(os.Stdout, dt, dir)
	return nil
}
