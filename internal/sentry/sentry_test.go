package sentry

import "testing"

func TestInitNoOpWithoutDSN(t *testing.T) {
	t.Setenv("SENTRY_DSN", "")
	cleanup := Init("0.1.0-test")
	if cleanup == nil {
		t.Fatal("Init should always return a non-nil cleanup func")
	}
	cleanup() // should not panic
}

func TestCaptureErrorNilIsNoOp(t *testing.T) {
	CaptureError(nil) // should not panic
}

func TestRecoverAndPanicRepanics(t *testing.T) {
	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
	}()
	defer RecoverAndPanic()
	panic("boom")
}
