package justfile

import (
	"testing"

	"github.com/aleyan/dela/internal/task"
)

func TestParseRecipes(t *testing.T) {
	data := []byte(`# build everything
build:
    go build ./...

[private]
_helper:
    echo internal

test arg1 arg2:
    go test {{arg1}} {{arg2}}
`)
	tasks, status, msg := Parser{}.Parse(data, "Justfile")
	if status != task.Parsed {
		t.Fatalf("status = %v, msg = %q", status, msg)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks: %+v", len(tasks), tasks)
	}
	want := []string{"build", "_helper", "test"}
	for i, w := range want {
		if tasks[i].SourceName != w {
			t.Errorf("index %d: got %q, want %q", i, tasks[i].SourceName, w)
		}
		if tasks[i].Family != task.FamilyJustfile {
			t.Errorf("index %d: family = %v", i, tasks[i].Family)
		}
	}
}

func TestParseDedupesWithinFile(t *testing.T) {
	data := []byte("build:\n    echo 1\nbuild:\n    echo 2\n")
	tasks, status, _ := Parser{}.Parse(data, "Justfile")
	if status != task.Parsed {
		t.Fatalf("status = %v", status)
	}
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
}
