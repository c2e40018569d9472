package command

import (
	"testing"

	"github.com/aleyan/dela/internal/runnerkind"
	"github.com/aleyan/dela/internal/task"
)

func TestQuotePassesThroughSafeTokens(t *testing.T) {
	for _, tok := range []string{"build", "a.b-c_d/e:f@g%h+i,j=k", "123"} {
		if got := Quote(tok); got != tok {
			t.Errorf("Quote(%q) = %q, want unchanged", tok, got)
		}
	}
}

func TestQuoteWrapsUnsafeTokens(t *testing.T) {
	if got := Quote("hello world"); got != "'hello world'" {
		t.Errorf("got %q", got)
	}
	if got := Quote(""); got != "''" {
		t.Errorf("got %q, want ''", got)
	}
}

func TestQuoteEscapesEmbeddedSingleQuotes(t *testing.T) {
	got := Quote("it's here")
	want := `'it'\''s here'`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildMake(t *testing.T) {
	tk := task.Task{SourceName: "build", FilePath: "/repo/Makefile", Runner: runnerkind.Make}
	got := Build(tk, nil)
	want := "make -f /repo/Makefile build"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildNpmWithArgs(t *testing.T) {
	tk := task.Task{SourceName: "test", Runner: runnerkind.Npm}
	got := Build(tk, []string{"--watch"})
	want := "npm run test -- --watch"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildNpmNoArgs(t *testing.T) {
	tk := task.Task{SourceName: "test", Runner: runnerkind.Npm}
	got := Build(tk, nil)
	want := "npm run test"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildCompose(t *testing.T) {
	tk := task.Task{SourceName: "web", Runner: runnerkind.Compose}
	got := Build(tk, []string{"echo", "hi"})
	want := "docker compose run web echo hi"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildMvnIgnoresArgs(t *testing.T) {
	tk := task.Task{SourceName: "package", Runner: runnerkind.Mvn}
	got := Build(tk, []string{"ignored"})
	want := "mvn package"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildAct(t *testing.T) {
	tk := task.Task{SourceName: "CI", FilePath: "/repo/.github/workflows/ci.yml", Runner: runnerkind.Act}
	got := Build(tk, nil)
	want := "act -W /repo/.github/workflows/ci.yml"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildQuotesTaskNameWhenUnsafe(t *testing.T) {
	tk := task.Task{SourceName: "run tests", Runner: runnerkind.Just}
	got := Build(tk, nil)
	want := "just 'run tests'"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
