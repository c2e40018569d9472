// Package listing renders a DiscoveredTasks set as the human-readable
// `list` output whose grammar spec §6 fixes verbatim.
//
// Grounded on the teacher's internal/output/text.go: a column-aligned,
// ANSI-aware formatter that writes directly to an io.Writer and groups
// footnotes after the main body, generalized here from error-by-file
// grouping to task markers plus duplicate/shadow footnotes.
package listing

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/aleyan/dela/internal/task"
	"github.com/aleyan/dela/internal/tui"
)

// nameColumn is the fixed column width the unique_name + markers are
// padded to before " - (runner)" (spec §6).
const nameColumn = 28

// Render writes dt's tasks, in discovery order, to w using the spec §6
// grammar, followed by duplicate/shadow footnotes and a definition-file
// issues section (spec §3/§7's ParseError display, part of the
// SUPPLEMENTED FEATURES in SPEC_FULL.md).
func Render(w io.Writer, dt task.DiscoveredTasks, cwd string) {
	if len(dt.Tasks) == 0 {
		fmt.Fprintln(w, tui.MutedStyle.Render("No tasks discovered."))
		printFileIssues(w, dt.Files)
		return
	}

	ambiguousSource := map[string]bool{}
	counts := map[string]int{}
	for _, t := range dt.Tasks {
		counts[t.SourceName]++
	}
	for name, n := range counts {
		if n >= 2 {
			ambiguousSource[name] = true
		}
	}

	for _, t := range dt.Tasks {
		fmt.Fprintln(w, renderLine(t, ambiguousSource[t.SourceName]))
	}

	printDuplicateFootnotes(w, dt.Tasks, ambiguousSource, cwd)
	printShadowFootnotes(w, dt.Tasks)
	printFileIssues(w, dt.Files)
}

func renderLine(t task.Task, ambiguous bool) string {
	label := t.UniqueName
	if ambiguous {
		label += " ‖" // ‖
	}

	padded := label
	if len(padded) < nameColumn {
		padded += spaces(nameColumn - len(padded))
	}

	line := fmt.Sprintf("  %s - (%s)", padded, t.Runner.ShortName())

	switch {
	case t.Shadow != nil && t.Shadow.Kind == task.ShellBuiltin:
		line += " †" // †
	case t.Shadow != nil && t.Shadow.Kind == task.PathExecutable:
		line += " ‡" // ‡
	}

	if !t.RunnerAvailable {
		line += " [runner unavailable]"
	}

	if t.Description != "" {
		line += " - " + t.Description
	}
	return line
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// printDuplicateFootnotes emits one line per runner variant of a
// source_name that collided (spec §6): "Use '<unique_name>' for <runner>
// version in <relative_path>".
func printDuplicateFootnotes(w io.Writer, tasks []task.Task, ambiguousSource map[string]bool, cwd string) {
	var names []string
	for name := range ambiguousSource {
		names = append(names, name)
	}
	if len(names) == 0 {
		return
	}
	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.BoldStyle.Render("Duplicate task names (‖)"))
	for _, name := range names {
		for _, t := range tasks {
			if t.SourceName != name {
				continue
			}
			rel := relOrAbs(cwd, t.FilePath)
			fmt.Fprintf(w, "  Use '%s' for %s version in %s\n", t.UniqueName, t.Runner.ShortName(), rel)
		}
	}
}

// printShadowFootnotes emits one line per shadowed task (spec §6).
func printShadowFootnotes(w io.Writer, tasks []task.Task) {
	var any bool
	for _, t := range tasks {
		if t.Shadow != nil {
			any = true
			break
		}
	}
	if !any {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.BoldStyle.Render("Shadowed tasks"))
	for _, t := range tasks {
		if t.Shadow == nil {
			continue
		}
		switch t.Shadow.Kind {
		case task.ShellBuiltin:
			fmt.Fprintf(w, "  † task '%s' shadowed by %s shell builtin\n", t.SourceName, t.Shadow.Shell)
		case task.PathExecutable:
			fmt.Fprintf(w, "  ‡ task '%s' shadowed by executable at %s\n", t.SourceName, t.Shadow.Path)
		}
	}
}

// printFileIssues renders definition files that failed to parse or could
// not be read, retained on DiscoveredTasks for diagnostic display even
// when zero tasks resulted (spec §3).
func printFileIssues(w io.Writer, files []task.DefinitionFile) {
	var problems []task.DefinitionFile
	for _, f := range files {
		if f.Status == task.ParseError || f.Status == task.NotReadable {
			problems = append(problems, f)
		}
	}
	if len(problems) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, tui.WarningStyle.Render("Definition file issues"))
	for _, f := range problems {
		fmt.Fprintf(w, "  %s: %s (%s)\n", f.Path, f.Message, f.Status)
	}
}

func relOrAbs(cwd, path string) string {
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}
