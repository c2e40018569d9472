package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aleyan/dela/internal/allowlist"
	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/shellintegration"
	"github.com/aleyan/dela/internal/tui"
)

// initCmd implements §4.8's init: ensure ~/.dela/ and
// ~/.dela/allowlist.toml exist, then append the shell-integration source
// line to the detected rc file if it isn't already present.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up dela's config directory and shell integration",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := allowlist.DefaultDir()
	if err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "resolving ~/.dela")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "creating %s", dir)
	}
	if err := allowlist.EnsureFile(dir); err != nil {
		return err
	}

	shell, err := shellintegration.FromEnv()
	if err != nil {
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "resolving home directory")
	}
	rcPath, err := shellintegration.RCFile(shell, home)
	if err != nil {
		return err
	}

	binPath, err := os.Executable()
	if err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "resolving dela's own path")
	}
	sourceLine := shellintegration.SourceLine(shell, binPath)

	if err := appendIfMissing(rcPath, sourceLine); err != nil {
		return err
	}

	fmt.Println(tui.ExitSuccess("dela initialized; restart your shell or source " + rcPath))
	return nil
}

// appendIfMissing appends line to path (creating parent directories and
// the file itself if necessary) unless it already contains that exact
// line.
func appendIfMissing(path, line string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "creating %s", dir)
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return delaerr.Wrap(delaerr.KindIoError, err, "reading %s", path)
	}
	if strings.Contains(string(existing), line) {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "opening %s", path)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# dela shell integration\n%s\n", line); err != nil {
		return delaerr.Wrap(delaerr.KindIoError, err, "writing %s", path)
	}
	return nil
}
