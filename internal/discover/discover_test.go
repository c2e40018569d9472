package discover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleyan/dela/internal/runnerkind"
	"github.com/aleyan/dela/internal/shadow"
	"github.com/aleyan/dela/internal/task"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverMakefileAndPackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", "build:\n\tgo build ./...\n")
	writeFile(t, dir, "package.json", `{"scripts":{"test":"jest"}}`)

	det := shadow.NewDetectorFor("", nil)
	dt := discoverWith(dir, det)

	names := map[string]task.Task{}
	for _, tk := range dt.Tasks {
		names[tk.SourceName] = tk
	}

	if names["build"].Runner != runnerkind.Make {
		t.Errorf("build runner = %v, want Make", names["build"].Runner)
	}
	if names["test"].Runner != runnerkind.Npm {
		t.Errorf("test runner = %v, want Npm (no lockfile present)", names["test"].Runner)
	}
}

func TestDiscoverAbsentFilesAreNotReported(t *testing.T) {
	dir := t.TempDir()
	det := shadow.NewDetectorFor("", nil)
	dt := discoverWith(dir, det)
	if len(dt.Files) != 0 {
		t.Errorf("got %+v, want no definition files reported for an empty directory", dt.Files)
	}
	if len(dt.Tasks) != 0 {
		t.Errorf("got %+v, want no tasks", dt.Tasks)
	}
}

func TestDiscoverParseErrorIsSurfaced(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{not valid json`)

	det := shadow.NewDetectorFor("", nil)
	dt := discoverWith(dir, det)

	var found bool
	for _, f := range dt.Files {
		if f.Status == task.ParseError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a ParseError definition file, got %+v", dt.Files)
	}
	if len(dt.Errors) == 0 {
		t.Error("expected a non-empty Errors slice")
	}
}

func TestDiscoverGithubActionsExpandsWorkflowDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".github/workflows/ci.yml", "name: CI\non: [push]\n")
	writeFile(t, dir, ".github/workflows/release.yaml", "name: Release\non: [push]\n")

	det := shadow.NewDetectorFor("", nil)
	dt := discoverWith(dir, det)

	names := map[string]bool{}
	for _, tk := range dt.Tasks {
		if tk.Runner == runnerkind.Act {
			names[tk.SourceName] = true
		}
	}
	if !names["CI"] || !names["Release"] {
		t.Errorf("got %+v, want CI and Release", dt.Tasks)
	}
}

func TestDiscoverDedupesWithinFileButNotAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", "test:\n\techo 1\ntest:\n\techo 2\n")
	writeFile(t, dir, "package.json", `{"scripts":{"test":"jest"}}`)

	det := shadow.NewDetectorFor("", nil)
	dt := discoverWith(dir, det)

	count := 0
	for _, tk := range dt.Tasks {
		if tk.SourceName == "test" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("got %d 'test' tasks, want 2 (one per file, deduped within each)", count)
	}
}

func TestDiscoverAssignsUniqueNamesForCrossFileDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Makefile", "test:\n\techo 1\n")
	writeFile(t, dir, "package.json", `{"scripts":{"test":"jest"}}`)

	det := shadow.NewDetectorFor("", nil)
	dt := discoverWith(dir, det)

	seen := map[string]bool{}
	for _, tk := range dt.Tasks {
		if tk.SourceName != "test" {
			continue
		}
		if seen[tk.UniqueName] {
			t.Fatalf("duplicate unique_name %q", tk.UniqueName)
		}
		seen[tk.UniqueName] = true
		if tk.UniqueName == "test" {
			t.Errorf("expected a disambiguated unique_name, got bare %q", tk.UniqueName)
		}
	}
}
