package makefile

import (
	"testing"

	"github.com/aleyan/dela/internal/task"
)

func names(tasks []task.RawTask) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.SourceName
	}
	return out
}

func TestParseExplicitTargets(t *testing.T) {
	data := []byte(`build: deps
	go build ./...

test:
	go test ./...

.PHONY: build test

clean:
	rm -rf bin
`)
	tasks, status, msg := Parser{}.Parse(data, "Makefile")
	if status != task.Parsed {
		t.Fatalf("status = %v, msg = %q", status, msg)
	}
	got := names(tasks)
	want := []string{"build", "test", "clean"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseSkipsPatternAndDotTargets(t *testing.T) {
	data := []byte(`%.o: %.c
	cc -c $<

.DEFAULT: all

all:
	echo hi
`)
	tasks, status, _ := Parser{}.Parse(data, "Makefile")
	if status != task.Parsed {
		t.Fatalf("status = %v", status)
	}
	got := names(tasks)
	if len(got) != 1 || got[0] != "all" {
		t.Fatalf("got %v, want [all]", got)
	}
}

func TestParseIgnoresConditionalsAndComments(t *testing.T) {
	data := []byte(`# a comment
ifeq ($(OS),Linux)
build:
	echo linux
else
build:
	echo other
endif
`)
	tasks, status, _ := Parser{}.Parse(data, "Makefile")
	if status != task.Parsed {
		t.Fatalf("status = %v", status)
	}
	got := names(tasks)
	if len(got) != 1 || got[0] != "build" {
		t.Fatalf("got %v, want [build] (dedup within file)", got)
	}
}

func TestParseEmptyMakefileIsNotAnError(t *testing.T) {
	tasks, status, msg := Parser{}.Parse([]byte("# nothing here\n"), "Makefile")
	if status != task.Parsed {
		t.Fatalf("status = %v, msg = %q", status, msg)
	}
	if len(tasks) != 0 {
		t.Fatalf("got %v, want none", tasks)
	}
}
