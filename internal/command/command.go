// Package command implements the command builder (spec §4.7/C8):
// given a resolved Task and trailing argv, produce the exact shell-safe
// command string dela's `get-command`/`run` print or execute.
//
// Grounded on the teacher's internal/act.runner, which assembles an
// `act` invocation as a slice of tokens and joins them with a single
// space, quoting only where a token demands it - the same shape this
// package generalizes from "one runner" to all sixteen.
package command

import (
	"regexp"
	"strings"

	"github.com/aleyan/dela/internal/runnerkind"
	"github.com/aleyan/dela/internal/task"
)

// unsafeChar matches any byte that forces single-quoting per spec §4.7:
// whitespace or a shell metacharacter.
var unsafeChar = regexp.MustCompile(`[^A-Za-z0-9_./:@%+=,-]`)

// Quote wraps tok in single quotes if it contains whitespace or a shell
// metacharacter, escaping embedded single quotes as '\'' (spec §4.7).
// Tokens that need no quoting are returned unchanged.
func Quote(tok string) string {
	if tok == "" {
		return "''"
	}
	if !unsafeChar.MatchString(tok) {
		return tok
	}
	return "'" + strings.ReplaceAll(tok, "'", `'\''`) + "'"
}

func quoteAll(toks []string) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = Quote(t)
	}
	return out
}

func join(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// Build produces the shell command for t with trailing argv, per the
// per-runner grammar in spec §4.7. The output is a single line with no
// trailing newline.
func Build(t task.Task, argv []string) string {
	args := quoteAll(argv)
	name := Quote(t.SourceName)

	switch t.Runner {
	case runnerkind.Make:
		return join("make", "-f", Quote(t.FilePath), name, strings.Join(args, " "))

	case runnerkind.Npm, runnerkind.Pnpm, runnerkind.Yarn, runnerkind.Bun:
		runner := t.Runner.ShortName()
		if len(args) == 0 {
			return join(runner, "run", name)
		}
		return join(runner, "run", name, "--", strings.Join(args, " "))

	case runnerkind.Uv:
		return join("uv", "run", name, strings.Join(args, " "))

	case runnerkind.Poetry:
		return join("poetry", "run", name, strings.Join(args, " "))

	case runnerkind.Poe:
		return join("poe", name, strings.Join(args, " "))

	case runnerkind.Task:
		return join("task", name, strings.Join(args, " "))

	case runnerkind.Just:
		return join("just", name, strings.Join(args, " "))

	case runnerkind.Mvn:
		return join("mvn", name)

	case runnerkind.Gradle:
		return join("gradle", name, strings.Join(args, " "))

	case runnerkind.Act:
		return join("act", "-W", Quote(t.FilePath), strings.Join(args, " "))

	case runnerkind.Compose:
		return join("docker", "compose", "run", name, strings.Join(args, " "))

	case runnerkind.Cmake:
		return join("cmake", "--build", ".", "--target", name)

	case runnerkind.Travis:
		return join("travis", name)

	default:
		return join(t.Runner.ShortName(), name, strings.Join(args, " "))
	}
}
