// Package cmake parses CMakeLists.txt add_custom_target declarations into
// RawTasks (spec §4.1).
package cmake

import (
	"regexp"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for CMakeLists.txt.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyCMake }

// customTarget matches add_custom_target(name ...) with an optional
// trailing COMMENT "...".
var customTarget = regexp.MustCompile(`(?is)add_custom_target\s*\(\s*([A-Za-z0-9_.\-]+)([^)]*)\)`)
var commentArg = regexp.MustCompile(`(?is)COMMENT\s+"([^"]*)"`)

// Parse emits one RawTask per add_custom_target(name ...), with
// description from a trailing COMMENT "..." if present (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var tasks []task.RawTask
	for _, m := range customTarget.FindAllStringSubmatch(string(data), -1) {
		name := m[1]
		description := ""
		if cm := commentArg.FindStringSubmatch(m[2]); cm != nil {
			description = cm[1]
		}
		tasks = append(tasks, task.RawTask{
			SourceName:  name,
			Family:      task.FamilyCMake,
			Description: description,
		})
	}
	return tasks, task.Parsed, ""
}
