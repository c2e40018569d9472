// Package disambiguate implements the collision detector and
// minimum-unique-suffix minter from spec §4.5 (C5).
package disambiguate

import (
	"strconv"

	"github.com/aleyan/dela/internal/task"
)

// Assign computes unique_name for every task in place, per spec §4.5.
// Tasks are modified by index so callers must pass a slice, not a copy
// of one, for the mutation to be visible.
//
// Algorithm (a single linear scan in discovery order, no sorting and no
// graph propagation): partition by source_name;
// any task in a partition of size >= 2, or carrying a shadow, needs a
// suffix. Tasks are then processed once, in stable discovery order,
// each picking the shortest runner-short-name-derived suffix (falling
// back to a numeric tiebreaker) that keeps its combined name unique
// against everything assigned so far. Because source_name, runner and
// shadow never change between calls, running Assign twice on its own
// output reproduces the same names (spec's idempotence requirement).
func Assign(tasks []task.Task) {
	counts := map[string]int{}
	for _, t := range tasks {
		counts[t.SourceName]++
	}

	needsSuffix := make([]bool, len(tasks))
	reserved := map[string]bool{}
	for i, t := range tasks {
		if counts[t.SourceName] >= 2 || t.Shadow != nil {
			needsSuffix[i] = true
		} else {
			reserved[t.SourceName] = true
		}
	}

	for i := range tasks {
		if !needsSuffix[i] {
			tasks[i].UniqueName = tasks[i].SourceName
		}
	}

	for i := range tasks {
		if !needsSuffix[i] {
			continue
		}
		name := pickSuffix(tasks[i].SourceName, tasks[i].Runner.ShortName(), reserved)
		tasks[i].UniqueName = name
		reserved[name] = true
	}
}

// pickSuffix returns the shortest "<sourceName>-<suffix>" not already in
// reserved, growing the runner short-name one character at a time and
// falling back to numeric tiebreakers once it is exhausted (spec §4.5).
func pickSuffix(sourceName, shortName string, reserved map[string]bool) string {
	for length := 1; length <= len(shortName); length++ {
		candidate := sourceName + "-" + shortName[:length]
		if !reserved[candidate] {
			return candidate
		}
	}

	// Short-name exhausted (or empty, e.g. an unresolved runner): append
	// numeric tiebreakers in sequence.
	for n := 1; ; n++ {
		candidate := sourceName + "-" + shortName + strconv.Itoa(n)
		if !reserved[candidate] {
			return candidate
		}
	}
}
