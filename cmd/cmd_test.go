package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStripLeadingDashDash(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"--", "build"}, []string{"build"}},
		{[]string{"build"}, []string{"build"}},
		{[]string{}, []string{}},
	}
	for _, c := range cases {
		got := stripLeadingDashDash(c.in)
		if len(got) != len(c.want) {
			t.Fatalf("stripLeadingDashDash(%v) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("stripLeadingDashDash(%v) = %v, want %v", c.in, got, c.want)
			}
		}
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestExecuteListExitsZero(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\tgo build ./...\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	rootCmd.SetArgs([]string{"list"})
	code, err := Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}

func TestExecuteGetCommandUnknownTask(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	rootCmd.SetArgs([]string{"get-command", "--", "nonexistent"})
	code, err := Execute()
	if err == nil {
		t.Fatal("expected an error for an unknown task")
	}
	if code != 10 {
		t.Errorf("code = %d, want 10 (NotFound)", code)
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error %q should mention the task name", err.Error())
	}
}

func TestExecuteRunPropagatesChildExitCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Makefile"), []byte("build:\n\texit 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("DELA_AUTO_ALLOW", "1")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHELL", "/bin/sh")

	rootCmd.SetArgs([]string{"run", "build"})
	code, err := Execute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 2 {
		t.Errorf("code = %d, want 2 (make's own exit status for a failed recipe, propagated from the spawned shell)", code)
	}
}
