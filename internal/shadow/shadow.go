// Package shadow implements the shell-builtin and PATH-executable shadow
// detector from spec §4.3 (C3).
package shadow

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aleyan/dela/internal/task"
)

// builtinsByShell is the fixed set of shell builtins per shell identity
// (spec §4.3.1). This is intentionally a hand-curated, non-exhaustive
// list of the names most likely to collide with real task names -
// dela does not need to reimplement a full shell grammar to decide
// whether "cd" or "test" would be intercepted before reaching the
// command-not-found handler.
var builtinsByShell = map[string]map[string]bool{
	"zsh": setOf(
		"cd", "pwd", "echo", "test", "true", "false", "read", "exit", "eval",
		"exec", "export", "set", "unset", "alias", "unalias", "type", "jobs",
		"fg", "bg", "kill", "wait", "source", "history", "print", "pushd",
		"popd", "dirs", "let", "local", "return", "shift", "trap", "ulimit",
		"umask", "which", "time", "function",
	),
	"bash": setOf(
		"cd", "pwd", "echo", "test", "true", "false", "read", "exit", "eval",
		"exec", "export", "set", "unset", "alias", "unalias", "type", "jobs",
		"fg", "bg", "kill", "wait", "source", "history", "pushd", "popd",
		"dirs", "let", "local", "return", "shift", "trap", "ulimit", "umask",
		"time", "function", "declare", "readonly",
	),
	"fish": setOf(
		"cd", "pwd", "echo", "test", "true", "false", "read", "exit", "eval",
		"exec", "set", "functions", "alias", "type", "jobs", "fg", "bg",
		"kill", "wait", "source", "history", "pushd", "popd", "dirs",
		"return", "status", "string", "math", "begin", "end",
	),
	"pwsh": setOf(
		"cd", "pwd", "echo", "test", "exit", "set", "get-location",
		"set-location", "write-output", "read-host", "get-alias",
		"set-alias", "get-job", "wait-job", "stop-job", "get-history",
		"push-location", "pop-location", "get-content", "clear-host",
	),
}

func setOf(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// ShellFromEnv derives the active shell identity from $SHELL's basename
// (spec §4.3.1). Unknown shells have no builtins.
func ShellFromEnv() string {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		return ""
	}
	base := filepath.Base(shellPath)
	// Strip a trailing ".exe" for pwsh on Windows.
	base = strings.TrimSuffix(strings.ToLower(base), ".exe")
	if base == "powershell" {
		base = "pwsh"
	}
	if _, ok := builtinsByShell[base]; ok {
		return base
	}
	return ""
}

// Detector resolves shadows against a fixed shell identity and PATH
// listing, both captured once per process per spec §4.3/I5 ("shadow is
// computed with respect to the shell selected by the current
// environment, not a fixed shell").
type Detector struct {
	shell string
	path  []string
}

// NewDetector builds a Detector from the current environment.
func NewDetector() *Detector {
	return &Detector{
		shell: ShellFromEnv(),
		path:  splitPath(os.Getenv("PATH")),
	}
}

// NewDetectorFor builds a Detector for a specific shell/PATH, for tests
// and for any future multi-shell reporting.
func NewDetectorFor(shell string, path []string) *Detector {
	return &Detector{shell: shell, path: path}
}

func splitPath(pathEnv string) []string {
	if pathEnv == "" {
		return nil
	}
	return strings.Split(pathEnv, string(os.PathListSeparator))
}

// Detect reports the shadow (if any) for sourceName. ShellBuiltin takes
// precedence over PathExecutable (spec §4.3.2: "a builtin shadow is
// reported even if a PATH executable also exists, because the shell
// would not reach the PATH lookup").
func (d *Detector) Detect(sourceName string) *task.Shadow {
	if builtins, ok := builtinsByShell[d.shell]; ok && builtins[sourceName] {
		return &task.Shadow{Kind: task.ShellBuiltin, Shell: d.shell}
	}

	for _, dir := range d.path {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, sourceName)
		if isExecutableFile(candidate) {
			return &task.Shadow{Kind: task.PathExecutable, Path: candidate}
		}
	}

	return nil
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	// On POSIX, any non-zero permission bit among owner/group/other exec
	// bits is enough for dela's purposes; Windows PATH resolution rules
	// are out of scope for the detector (see spec's Open Questions).
	return info.Mode()&0o111 != 0
}
