// Package makefile parses GNU Makefiles into RawTasks (spec §4.1).
package makefile

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for Makefile targets.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyMakefile }

// targetLine matches an explicit, non-pattern rule target at the start
// of a line: "name: deps" or "name:" (no leading whitespace, which is
// how make distinguishes a rule header from a recipe line).
var targetLine = regexp.MustCompile(`^([A-Za-z0-9_.\-/]+)\s*:(?:[^=]|$)`)

// Parse extracts one RawTask per explicit rule target, skipping
// dot-prefixed special targets (.PHONY, .DEFAULT, ...) and pattern rules
// (targets containing "%"). It tolerates comments and
// ifeq/ifneq/ifdef/ifndef/else/endif conditional blocks by skipping those
// directive lines; targets inside every branch are all collected.
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	tasks, ok := strictParse(data)
	if ok && len(tasks) > 0 {
		return tasks, task.Parsed, ""
	}

	// Fault-tolerant fallback (spec §4.1): a looser regex extraction.
	// Tagged Parsed only if it recovered at least one plausible target.
	fallback := fallbackParse(data)
	if len(fallback) > 0 {
		return fallback, task.Parsed, ""
	}
	if ok {
		// Strict parse succeeded but found nothing - an empty Makefile is
		// not an error.
		return tasks, task.Parsed, ""
	}
	return nil, task.ParseError, "no recognizable targets found"
}

func strictParse(data []byte) ([]task.RawTask, bool) {
	var out []task.RawTask
	seen := map[string]bool{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Recipe lines are indented with a tab; never a target header.
		if strings.HasPrefix(line, "\t") {
			continue
		}
		if strings.HasPrefix(trimmed, "ifeq") || strings.HasPrefix(trimmed, "ifneq") ||
			strings.HasPrefix(trimmed, "ifdef") || strings.HasPrefix(trimmed, "ifndef") ||
			trimmed == "endif" || trimmed == "else" {
			continue
		}

		m := targetLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		for _, name := range strings.Fields(m[1]) {
			if strings.HasPrefix(name, ".") || strings.Contains(name, "%") {
				continue
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, task.RawTask{SourceName: name, Family: task.FamilyMakefile})
		}
	}
	if err := scanner.Err(); err != nil {
		return out, false
	}
	return out, true
}

// fallbackLine is intentionally looser than targetLine: it tolerates
// trailing text after the colon and targets that strictParse's indentation
// heuristics might have missed.
var fallbackLine = regexp.MustCompile(`(?m)^([A-Za-z0-9_.\-/]+)\s*:[^=]`)

func fallbackParse(data []byte) []task.RawTask {
	var out []task.RawTask
	seen := map[string]bool{}
	for _, m := range fallbackLine.FindAllStringSubmatch(string(data), -1) {
		name := m[1]
		if strings.HasPrefix(name, ".") || strings.Contains(name, "%") || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, task.RawTask{SourceName: name, Family: task.FamilyMakefile})
	}
	return out
}
