//go:build windows

package procexec

import (
	"os"
	"os/exec"
)

// setupProcessGroup is a no-op on Windows (process groups work
// differently there).
func setupProcessGroup(cmd *exec.Cmd) {
}

// forwardSignal kills the child directly; Windows has no POSIX signal
// forwarding semantics to emulate.
func forwardSignal(cmd *exec.Cmd, _ os.Signal) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}
