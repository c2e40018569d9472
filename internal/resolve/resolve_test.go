package resolve

import (
	"testing"

	"github.com/aleyan/dela/internal/delaerr"
	"github.com/aleyan/dela/internal/runnerkind"
	"github.com/aleyan/dela/internal/task"
)

func sample() []task.Task {
	return []task.Task{
		{SourceName: "test", UniqueName: "test-m", Runner: runnerkind.Make},
		{SourceName: "test", UniqueName: "test-n", Runner: runnerkind.Npm},
		{SourceName: "build", UniqueName: "build", Runner: runnerkind.Make},
	}
}

func TestResolveByUniqueName(t *testing.T) {
	got, err := Resolve(sample(), "test-n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Runner != runnerkind.Npm {
		t.Errorf("got runner %v, want Npm", got.Runner)
	}
}

func TestResolveBySourceNameWhenUnambiguous(t *testing.T) {
	got, err := Resolve(sample(), "build")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UniqueName != "build" {
		t.Errorf("got %q, want build", got.UniqueName)
	}
}

func TestResolveAmbiguousSourceName(t *testing.T) {
	_, err := Resolve(sample(), "test")
	kind, ok := delaerr.KindOf(err)
	if !ok || kind != delaerr.KindAmbiguous {
		t.Fatalf("got (%v, %v), want KindAmbiguous", kind, ok)
	}
}

func TestResolveNotFound(t *testing.T) {
	_, err := Resolve(sample(), "nonexistent")
	kind, ok := delaerr.KindOf(err)
	if !ok || kind != delaerr.KindNotFound {
		t.Fatalf("got (%v, %v), want KindNotFound", kind, ok)
	}
}
