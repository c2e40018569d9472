// Package compose parses docker-compose.yml / compose.yml service keys
// into RawTasks (spec §4.1).
package compose

import (
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for docker-compose files.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyDockerCompose }

type serviceDef struct {
	Image string `yaml:"image"`
}

type composeDoc struct {
	Services map[string]serviceDef `yaml:"services"`
}

// Parse emits one RawTask per top-level service key; description is the
// service's "image" if present (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var doc composeDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, task.ParseError, err.Error()
	}

	names := make([]string, 0, len(doc.Services))
	for name := range doc.Services {
		names = append(names, name)
	}
	sort.Strings(names)

	tasks := make([]task.RawTask, 0, len(names))
	for _, name := range names {
		tasks = append(tasks, task.RawTask{
			SourceName:  name,
			Family:      task.FamilyDockerCompose,
			Description: doc.Services[name].Image,
		})
	}
	return tasks, task.Parsed, ""
}
