// Package resolve implements the addressing rule shared by get-command,
// allow-command and run (spec §4.5's "Addressing rule for all downstream
// commands").
package resolve

import (
	"strings"

	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/task"
)

// Resolve finds the single Task that name addresses: first by exact
// unique_name match; failing that, by source_name, succeeding only if
// exactly one task shares that source_name. Two or more source_name
// matches with no unique_name hit is Ambiguous.
func Resolve(tasks []task.Task, name string) (task.Task, error) {
	for _, t := range tasks {
		if t.UniqueName == name {
			return t, nil
		}
	}

	var bySource []task.Task
	for _, t := range tasks {
		if t.SourceName == name {
			bySource = append(bySource, t)
		}
	}

	switch len(bySource) {
	case 0:
		return task.Task{}, delaerr.New(delaerr.KindNotFound, "no task named %q", name)
	case 1:
		return bySource[0], nil
	default:
		alts := make([]string, len(bySource))
		for i, t := range bySource {
			alts[i] = t.UniqueName
		}
		return task.Task{}, delaerr.New(delaerr.KindAmbiguous,
			"%q is ambiguous; use one of: %s", name, strings.Join(alts, ", "))
	}
}
