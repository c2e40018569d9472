package procexec

import "testing"

func TestRunReturnsExitCode(t *testing.T) {
	code, err := Run("/bin/sh", "exit 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 3 {
		t.Errorf("code = %d, want 3", code)
	}
}

func TestRunSuccess(t *testing.T) {
	code, err := Run("/bin/sh", "true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
}
