// Package procexec spawns the shell child for `run` (spec §4.7/§5) and
// forwards SIGINT/SIGTERM to its process group, generalized from the
// teacher's internal/act process-group helpers: the same
// Setpgid-on-unix / plain-Kill-on-windows split, moved from "the act
// container runner" to "whatever shell run just spawned for any
// runner".
package procexec

import (
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Run execs shellPath with "-c command", inheriting the caller's
// environment, stdio and working directory; waits for completion while
// forwarding SIGINT/SIGTERM to the child's process group, and returns
// the child's exit status (spec §4.7: "the parent waits, propagates the
// child's exit status, and forwards signals ... to the child process
// group").
func Run(shellPath, command string) (int, error) {
	cmd := exec.Command(shellPath, "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setupProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	for {
		select {
		case sig := <-sigChan:
			forwardSignal(cmd, sig)
		case err := <-done:
			return exitCode(cmd, err), nil
		}
	}
}

func exitCode(cmd *exec.Cmd, waitErr error) int {
	if waitErr == nil {
		return 0
	}
	if exitErr, ok := waitErr.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return 1
}
