package listing

import (
	"strings"
	"testing"

	"github.com/aleyan/dela/internal/runnerkind"
	"github.com/aleyan/dela/internal/task"
)

func TestRenderNoTasks(t *testing.T) {
	var buf strings.Builder
	Render(&buf, task.DiscoveredTasks{}, "/repo")
	if !strings.Contains(buf.String(), "No tasks discovered") {
		t.Errorf("got %q", buf.String())
	}
}

func TestRenderBasicLine(t *testing.T) {
	dt := task.DiscoveredTasks{
		Tasks: []task.Task{
			{SourceName: "build", UniqueName: "build", Runner: runnerkind.Make, RunnerAvailable: true},
		},
	}
	var buf strings.Builder
	Render(&buf, dt, "/repo")
	out := buf.String()
	if !strings.Contains(out, "build") || !strings.Contains(out, "(make)") {
		t.Errorf("got %q", out)
	}
	if strings.Contains(out, "runner unavailable") {
		t.Errorf("should not mark an available runner as unavailable: %q", out)
	}
}

func TestRenderMarksUnavailableRunner(t *testing.T) {
	dt := task.DiscoveredTasks{
		Tasks: []task.Task{
			{SourceName: "build", UniqueName: "build", Runner: runnerkind.Gradle, RunnerAvailable: false},
		},
	}
	var buf strings.Builder
	Render(&buf, dt, "/repo")
	if !strings.Contains(buf.String(), "[runner unavailable]") {
		t.Errorf("got %q", buf.String())
	}
}

func TestRenderDuplicateFootnote(t *testing.T) {
	dt := task.DiscoveredTasks{
		Tasks: []task.Task{
			{SourceName: "test", UniqueName: "test-m", Runner: runnerkind.Make, FilePath: "/repo/Makefile", RunnerAvailable: true},
			{SourceName: "test", UniqueName: "test-n", Runner: runnerkind.Npm, FilePath: "/repo/package.json", RunnerAvailable: true},
		},
	}
	var buf strings.Builder
	Render(&buf, dt, "/repo")
	out := buf.String()
	if !strings.Contains(out, "‖") {
		t.Errorf("expected ambiguity marker, got %q", out)
	}
	if !strings.Contains(out, "Duplicate task names") {
		t.Errorf("expected duplicate footnote section, got %q", out)
	}
}

func TestRenderShadowFootnote(t *testing.T) {
	dt := task.DiscoveredTasks{
		Tasks: []task.Task{
			{
				SourceName: "test", UniqueName: "test-n", Runner: runnerkind.Npm,
				RunnerAvailable: true,
				Shadow:          &task.Shadow{Kind: task.ShellBuiltin, Shell: "zsh"},
			},
		},
	}
	var buf strings.Builder
	Render(&buf, dt, "/repo")
	out := buf.String()
	if !strings.Contains(out, "†") {
		t.Errorf("expected shell-builtin shadow marker, got %q", out)
	}
	if !strings.Contains(out, "Shadowed tasks") {
		t.Errorf("expected shadow footnote section, got %q", out)
	}
}

func TestRenderFileIssues(t *testing.T) {
	dt := task.DiscoveredTasks{
		Files: []task.DefinitionFile{
			{Path: "/repo/Makefile", Status: task.ParseError, Message: "no recognizable targets found"},
		},
	}
	dt.Tasks = []task.Task{{SourceName: "x", UniqueName: "x", Runner: runnerkind.Make, RunnerAvailable: true}}
	var buf strings.Builder
	Render(&buf, dt, "/repo")
	out := buf.String()
	if !strings.Contains(out, "Definition file issues") || !strings.Contains(out, "no recognizable targets found") {
		t.Errorf("got %q", out)
	}
}
