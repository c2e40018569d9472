package runnerkind

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShortNameNonEmptyForKnownKinds(t *testing.T) {
	kinds := []Kind{Make, Npm, Pnpm, Yarn, Bun, Uv, Poetry, Poe, Task, Mvn, Gradle, Act, Compose, Cmake, Travis, Just}
	for _, k := range kinds {
		if k.ShortName() == "" {
			t.Errorf("%v has empty ShortName", k)
		}
	}
	if Unknown.ShortName() != "" {
		t.Errorf("Unknown.ShortName() = %q, want empty", Unknown.ShortName())
	}
}

func TestAvailableCachesAcrossCalls(t *testing.T) {
	ResetAvailabilityCache()
	defer ResetAvailabilityCache()

	calls := 0
	origLookPath := LookPath
	LookPath = func(name string) (string, error) {
		calls++
		return "/usr/bin/" + name, nil
	}
	defer func() { LookPath = origLookPath }()

	if !Available(Make) {
		t.Fatal("expected Make to be available")
	}
	if !Available(Make) {
		t.Fatal("expected Make to be available on second call")
	}
	if calls != 1 {
		t.Errorf("LookPath called %d times, want 1 (cached)", calls)
	}
}

func TestAvailableProbesDockerForCompose(t *testing.T) {
	ResetAvailabilityCache()
	defer ResetAvailabilityCache()

	var probed string
	origLookPath := LookPath
	LookPath = func(name string) (string, error) {
		probed = name
		return "", os.ErrNotExist
	}
	defer func() { LookPath = origLookPath }()

	Available(Compose)
	if probed != "docker" {
		t.Errorf("probed %q, want docker", probed)
	}
}

func TestResolveNodeRunnerLockfilePriority(t *testing.T) {
	dir := t.TempDir()
	write := func(name string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if got := ResolveNodeRunner(dir); got != Npm {
		t.Errorf("empty dir: got %v, want Npm", got)
	}

	write("package-lock.json")
	if got := ResolveNodeRunner(dir); got != Npm {
		t.Errorf("got %v, want Npm", got)
	}

	write("yarn.lock")
	if got := ResolveNodeRunner(dir); got != Yarn {
		t.Errorf("got %v, want Yarn (higher priority than npm)", got)
	}

	write("pnpm-lock.yaml")
	if got := ResolveNodeRunner(dir); got != Pnpm {
		t.Errorf("got %v, want Pnpm", got)
	}

	write("bun.lockb")
	if got := ResolveNodeRunner(dir); got != Bun {
		t.Errorf("got %v, want Bun (highest priority)", got)
	}
}

func TestResolvePythonRunner(t *testing.T) {
	cases := map[string]Kind{
		"[tool.poetry]\nname = \"x\"\n":        Poetry,
		"[tool.poe.tasks]\ntest = \"pytest\"\n": Poe,
		"[project]\nname = \"x\"\n":             Uv,
		"not valid toml [[[":                    Uv,
	}
	for data, want := range cases {
		if got := ResolvePythonRunner([]byte(data)); got != want {
			t.Errorf("ResolvePythonRunner(%q) = %v, want %v", data, got, want)
		}
	}
}
