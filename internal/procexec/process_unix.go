//go:build unix

package procexec

import (
	"os"
	"os/exec"
	"syscall"
)

// setupProcessGroup configures the command to run in its own process
// group so a forwarded signal reaches every descendant, not just the
// immediate child.
func setupProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// forwardSignal relays sig to the child's entire process group.
func forwardSignal(cmd *exec.Cmd, sig os.Signal) {
	if cmd.Process == nil {
		return
	}
	s, ok := sig.(syscall.Signal)
	if !ok {
		return
	}
	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		_ = cmd.Process.Signal(sig)
		return
	}
	_ = syscall.Kill(-pgid, s)
}
