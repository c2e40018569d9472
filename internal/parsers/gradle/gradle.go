// Package gradle parses build.gradle / build.gradle.kts into RawTasks
// (spec §4.1). Repeated declarations of one name in the same file are all
// returned here; the discovery engine keeps only the first of them.
package gradle

import (
	"regexp"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for Gradle build scripts.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyGradle }

// taskDeclarations matches the three syntactic forms spec §4.1 names:
//
//	task foo { ... }
//	tasks.register("foo") { ... }
//	tasks.register<T>("foo") { ... }
var taskDeclarations = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*task\s+([A-Za-z_][A-Za-z0-9_]*)\s*[({]`),
	regexp.MustCompile(`(?m)tasks\.register\s*(?:<[^>]*>)?\s*\(\s*["']([^"']+)["']`),
}

// Parse emits one RawTask per syntactic task declaration. This is a
// syntactic scan, not a Groovy/Kotlin-DSL evaluation (spec §1 fixes only
// a parser's output contract, not its internal grammar).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var tasks []task.RawTask
	text := string(data)
	for _, re := range taskDeclarations {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			name := m[1]
			if name == "" {
				continue
			}
			tasks = append(tasks, task.RawTask{SourceName: name, Family: task.FamilyGradle})
		}
	}
	return tasks, task.Parsed, ""
}
