// Package taskfile parses Taskfile.yml (go-task) into RawTasks (spec §4.1).
package taskfile

import (
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for Taskfile.yml.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyTaskfile }

type taskDef struct {
	Desc    string `yaml:"desc"`
	Summary string `yaml:"summary"`
}

type taskfileDoc struct {
	Tasks map[string]taskDef `yaml:"tasks"`
}

// Parse emits one RawTask per key under top-level "tasks"; description
// comes from "desc", falling back to "summary" (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var doc taskfileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, task.ParseError, err.Error()
	}

	names := make([]string, 0, len(doc.Tasks))
	for name := range doc.Tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]task.RawTask, 0, len(names))
	for _, name := range names {
		def := doc.Tasks[name]
		desc := def.Desc
		if desc == "" {
			desc = def.Summary
		}
		tasks = append(tasks, task.RawTask{
			SourceName:  name,
			Family:      task.FamilyTaskfile,
			Description: desc,
		})
	}
	return tasks, task.Parsed, ""
}
