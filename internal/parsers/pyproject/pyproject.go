// Package pyproject parses pyproject.toml's script tables (spec §4.1).
// Runner selection from file content ([tool.poetry] / [tool.poe.tasks])
// happens in internal/runnerkind, not here; this package only extracts
// RawTasks.
package pyproject

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for pyproject.toml.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyPyprojectToml }

type pyprojectDoc struct {
	Project struct {
		Scripts map[string]string `toml:"scripts"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Scripts map[string]string `toml:"scripts"`
		} `toml:"poetry"`
		Poe struct {
			Tasks map[string]toml.Primitive `toml:"tasks"`
		} `toml:"poe"`
	} `toml:"tool"`
}

// Parse emits RawTasks from [tool.poetry.scripts], [project.scripts], and
// [tool.poe.tasks] (spec §4.1). poe tasks may be declared as a bare
// command string or a table ({cmd = "...", help = "..."}); either way
// only the task name is needed here, so the value is decoded into
// toml.Primitive and never further inspected.
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var doc pyprojectDoc
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, task.ParseError, err.Error()
	}
	_ = meta

	var tasks []task.RawTask
	seen := map[string]bool{}

	addAll := func(names map[string]string) {
		sorted := make([]string, 0, len(names))
		for name := range names {
			sorted = append(sorted, name)
		}
		sort.Strings(sorted)
		for _, name := range sorted {
			if seen[name] {
				continue
			}
			seen[name] = true
			tasks = append(tasks, task.RawTask{SourceName: name, Family: task.FamilyPyprojectToml})
		}
	}

	addAll(doc.Project.Scripts)
	addAll(doc.Tool.Poetry.Scripts)

	poeNames := make([]string, 0, len(doc.Tool.Poe.Tasks))
	for name := range doc.Tool.Poe.Tasks {
		poeNames = append(poeNames, name)
	}
	sort.Strings(poeNames)
	for _, name := range poeNames {
		if seen[name] {
			continue
		}
		seen[name] = true
		tasks = append(tasks, task.RawTask{SourceName: name, Family: task.FamilyPyprojectToml})
	}

	return tasks, task.Parsed, ""
}
