// Package sentry wires crash reporting the way the teacher's
// internal/sentry package does: a deferred panic recoverer plus an
// explicit CaptureError call on any error cmd.Execute returns. dela's
// version sends no PII - only the error kind, Go version, and OS/arch,
// consistent with a developer-tool CLI's crash telemetry practice (see
// SPEC_FULL.md's AMBIENT STACK).
package sentry

import (
	"os"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/aleyan/dela/internal/delaerr"
)

const flushTimeout = 2 * time.Second

// Init initializes the Sentry SDK with the given version. If SENTRY_DSN
// is unset, Sentry is disabled (no-op). Returns a cleanup function that
// should be deferred.
func Init(version string) func() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return func() {}
	}

	env := os.Getenv("SENTRY_ENVIRONMENT")
	if env == "" {
		env = "production"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          "dela@" + version,
		Environment:      env,
		AttachStacktrace: true,
		SampleRate:       1.0,
	})
	if err != nil {
		return func() {}
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("go.version", runtime.Version())
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
	})

	return func() {
		sentry.Flush(flushTimeout)
	}
}

// CaptureError reports an error's Kind (never its message, which may
// embed a task name or file path) to Sentry if initialized.
func CaptureError(err error) {
	if err == nil {
		return
	}
	if kind, ok := delaerr.KindOf(err); ok {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("dela.error_kind", kind.String())
			sentry.CaptureMessage("dela: " + kind.String())
		})
		return
	}
	sentry.CaptureException(err)
}

// RecoverAndPanic recovers from a panic, reports it to Sentry, then
// re-panics. Use with defer at top-level entry points.
func RecoverAndPanic() {
	if r := recover(); r != nil {
		sentry.CurrentHub().Recover(r)
		sentry.Flush(flushTimeout)
		panic(r)
	}
}
