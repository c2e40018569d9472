package shellintegration

import (
	"strings"
	"testing"
)

func TestFromEnv(t *testing.T) {
	cases := map[string]Shell{
		"/usr/bin/zsh":        Zsh,
		"/bin/bash":           Bash,
		"/usr/local/bin/fish": Fish,
		"/usr/bin/pwsh":       Pwsh,
	}
	for shellPath, want := range cases {
		t.Setenv("SHELL", shellPath)
		got, err := FromEnv()
		if err != nil {
			t.Fatalf("FromEnv() for %q: %v", shellPath, err)
		}
		if got != want {
			t.Errorf("FromEnv() for %q = %v, want %v", shellPath, got, want)
		}
	}
}

func TestFromEnvUnsupportedShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/csh")
	if _, err := FromEnv(); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestSnippetContainsReentrancyGuard(t *testing.T) {
	for _, shell := range []Shell{Zsh, Bash, Fish, Pwsh} {
		snippet, err := Snippet(shell)
		if err != nil {
			t.Fatalf("Snippet(%v): %v", shell, err)
		}
		if !strings.Contains(snippet, "DELA_TASK_RUNNING") {
			t.Errorf("%v snippet missing DELA_TASK_RUNNING guard", shell)
		}
	}
}

func TestRCFileKnownShells(t *testing.T) {
	home := "/home/user"
	rc, err := RCFile(Zsh, home)
	if err != nil || rc != "/home/user/.zshrc" {
		t.Errorf("RCFile(Zsh) = (%q, %v)", rc, err)
	}
}

func TestSourceLineDiffersForPwsh(t *testing.T) {
	bash := SourceLine(Bash, "/usr/local/bin/dela")
	pwsh := SourceLine(Pwsh, "/usr/local/bin/dela")
	if !strings.Contains(bash, "eval") {
		t.Errorf("bash source line = %q, want eval-based", bash)
	}
	if !strings.Contains(pwsh, "Invoke-Expression") {
		t.Errorf("pwsh source line = %q, want Invoke-Expression-based", pwsh)
	}
}
