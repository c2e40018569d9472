// Package justfile parses Justfile/justfile recipes into RawTasks
// (spec §4.1).
package justfile

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for Justfiles.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyJustfile }

// recipeHeader matches a recipe declaration at column 0: an identifier,
// optional parameters, then a colon. Attribute lines ("[private]") and
// comments ("#") are skipped; recipe bodies are indented and so never
// match at column 0.
var recipeHeader = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_-]*)\s*(?:[^:=]*)?:(?:[^=]|$)`)

// Parse emits one RawTask per recipe (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var tasks []task.RawTask
	seen := map[string]bool{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		if line != trimmed {
			// Indented lines are recipe bodies, never headers.
			continue
		}
		m := recipeHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		tasks = append(tasks, task.RawTask{SourceName: name, Family: task.FamilyJustfile})
	}
	if err := scanner.Err(); err != nil {
		return tasks, task.ParseError, err.Error()
	}
	return tasks, task.Parsed, ""
}
