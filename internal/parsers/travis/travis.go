// Package travis parses .travis.yml's named build phases into RawTasks
// (spec §4.1).
package travis

import (
	"github.com/goccy/go-yaml"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for .travis.yml.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyTravis }

// curatedPhases is the fixed, curated set of named phases dela looks for
// (spec §4.1). Order here is the order they're emitted in when present.
var curatedPhases = []string{
	"before_install", "install", "before_script", "script",
	"after_success", "after_failure", "before_deploy", "deploy", "after_deploy",
	"after_script",
}

// Parse emits one RawTask per curated phase key that is actually defined
// in the file (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, task.ParseError, err.Error()
	}

	var tasks []task.RawTask
	for _, phase := range curatedPhases {
		if _, ok := doc[phase]; ok {
			tasks = append(tasks, task.RawTask{SourceName: phase, Family: task.FamilyTravis})
		}
	}
	return tasks, task.Parsed, ""
}
