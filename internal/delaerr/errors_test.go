package delaerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCodes(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:          10,
		KindRunnerUnavailable: 11,
		KindAmbiguous:         12,
		KindDenied:            20,
		KindRequiresApproval:  21,
		KindIoError:           2,
		KindUnsupportedShell:  2,
		KindParseError:        0,
	}
	for kind, want := range cases {
		if got := kind.ExitCode(); got != want {
			t.Errorf("%v.ExitCode() = %d, want %d", kind, got, want)
		}
	}
}

func TestNewAndError(t *testing.T) {
	err := New(KindNotFound, "no task named %q", "build")
	if err.Error() != `no task named "build"` {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Kind != KindNotFound {
		t.Errorf("Kind = %v", err.Kind)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := Wrap(KindIoError, cause, "reading %s", "allowlist.toml")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through Wrap to the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestKindOf(t *testing.T) {
	err := New(KindDenied, "nope")
	kind, ok := KindOf(err)
	if !ok || kind != KindDenied {
		t.Fatalf("KindOf = (%v, %v)", kind, ok)
	}

	wrapped := errors.New("plain error")
	if _, ok := KindOf(wrapped); ok {
		t.Error("KindOf should report false for a non-delaerr error")
	}
}

func TestKindOfThroughFmtWrap(t *testing.T) {
	inner := New(KindAmbiguous, "ambiguous")
	outer := fmt.Errorf("resolving task: %w", inner)
	kind, ok := KindOf(outer)
	if !ok || kind != KindAmbiguous {
		t.Fatalf("KindOf = (%v, %v)", kind, ok)
	}
}
