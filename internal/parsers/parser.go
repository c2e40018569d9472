// Package parsers defines the per-format definition-file parser contract
// (spec §4.1/C1) and the static registry that maps a discovered filename
// to its parser (spec §4.4).
//
// Grounded on the teacher's internal/tools.Registry and
// internal/tools/parser.ToolParser: a small interface implemented once
// per format, registered into a priority-ordered table. dela's variant
// drops the confidence-scoring "which parser best explains this line"
// logic (a definition file's format is unambiguous from its name) and
// keeps only the pure (bytes, path) -> (tasks, status) contract.
package parsers

import "github.com/aleyan/dela/internal/task"

// DefinitionParser is the per-format contract from spec §4.1: a pure
// function of file bytes and the absolute path they were read from.
// Implementations must never touch the filesystem beyond the bytes they
// were handed (the one exception, lockfile sniffing for package.json, is
// runner resolution (C2), not parsing).
type DefinitionParser interface {
	// Family identifies which task.Family this parser produces.
	Family() task.Family

	// Parse extracts RawTasks from a definition file's contents.
	// status is Parsed (possibly with zero tasks), ParseError, or
	// NotImplemented; Parse never returns NotFound/NotReadable, which are
	// the discovery engine's concerns (spec §4.1's last paragraph).
	Parse(data []byte, absPath string) (tasks []task.RawTask, status task.Status, message string)
}

// Registration pairs a glob-matchable filename pattern with the parser
// that handles it, in the fixed discovery order from spec §4.4. A
// pattern ending in "/*" is a directory glob (only used for the GitHub
// Actions workflow directory, which the discovery engine expands
// itself by listing .yml/.yaml siblings).
type Registration struct {
	Pattern  string
	CaseFold bool
	Parser   DefinitionParser
}
