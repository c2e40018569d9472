// Package maven parses pom.xml into RawTasks (spec §4.1).
package maven

import (
	"encoding/xml"
	"fmt"

	"github.com/aleyan/dela/internal/task"
)

// Parser implements parsers.DefinitionParser for Maven pom.xml.
type Parser struct{}

func (Parser) Family() task.Family { return task.FamilyMavenPom }

// lifecyclePhases is the fixed set of Maven lifecycle phases a user could
// invoke directly (spec §4.1).
var lifecyclePhases = []string{"clean", "compile", "test", "package", "install", "verify"}

type pomXML struct {
	XMLName xml.Name `xml:"project"`
	Profiles struct {
		Profile []struct {
			ID string `xml:"id"`
		} `xml:"profile"`
	} `xml:"profiles"`
	Build struct {
		Plugins struct {
			Plugin []pomPlugin `xml:"plugin"`
		} `xml:"plugins"`
	} `xml:"build"`
}

type pomPlugin struct {
	ArtifactID string `xml:"artifactId"`
	Executions struct {
		Execution []struct {
			Goals struct {
				Goal []string `xml:"goal"`
			} `xml:"goals"`
		} `xml:"execution"`
	} `xml:"executions"`
}

// Parse emits the fixed lifecycle phases, one RawTask per declared
// <profile><id> as "profile:<id>", and one per declared plugin execution
// goal as "<artifact>:<goal>" (spec §4.1).
func (p Parser) Parse(data []byte, _ string) ([]task.RawTask, task.Status, string) {
	var doc pomXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, task.ParseError, err.Error()
	}

	var tasks []task.RawTask
	for _, phase := range lifecyclePhases {
		tasks = append(tasks, task.RawTask{SourceName: phase, Family: task.FamilyMavenPom})
	}

	for _, profile := range doc.Profiles.Profile {
		if profile.ID == "" {
			continue
		}
		tasks = append(tasks, task.RawTask{
			SourceName: fmt.Sprintf("profile:%s", profile.ID),
			Family:     task.FamilyMavenPom,
		})
	}

	for _, plugin := range doc.Build.Plugins.Plugin {
		if plugin.ArtifactID == "" {
			continue
		}
		for _, exec := range plugin.Executions.Execution {
			for _, goal := range exec.Goals.Goal {
				if goal == "" {
					continue
				}
				tasks = append(tasks, task.RawTask{
					SourceName: fmt.Sprintf("%s:%s", plugin.ArtifactID, goal),
					Family:     task.FamilyMavenPom,
				})
			}
		}
	}

	return tasks, task.Parsed, ""
}
