// Package delaerr defines dela's closed error taxonomy (spec §7).
//
// Grounded on the teacher's internal/errors package: a typed struct
// carrying a classification enum plus an optional wrapped cause,
// constructed via small helper functions and inspected with errors.Is/As
// at the dispatch boundary rather than ad-hoc string matching.
package delaerr

import (
	"errors"
	"fmt"
)

// Kind is the closed set of error classifications from spec §7.
type Kind int

const (
	KindNotFound Kind = iota
	KindAmbiguous
	KindRunnerUnavailable
	KindRequiresApproval
	KindDenied
	KindParseError
	KindIoError
	KindUnsupportedShell
)

// ExitCode returns the process exit code mandated for this Kind by
// spec §4.8/§7. Kinds without a fixed top-level exit code (ParseError,
// which is recovered locally per §7's propagation policy) return 0.
func (k Kind) ExitCode() int {
	switch k {
	case KindNotFound:
		return 10
	case KindRunnerUnavailable:
		return 11
	case KindAmbiguous:
		return 12
	case KindDenied:
		return 20
	case KindRequiresApproval:
		return 21
	case KindIoError, KindUnsupportedShell:
		return 2
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindAmbiguous:
		return "Ambiguous"
	case KindRunnerUnavailable:
		return "RunnerUnavailable"
	case KindRequiresApproval:
		return "RequiresApproval"
	case KindDenied:
		return "Denied"
	case KindParseError:
		return "ParseError"
	case KindIoError:
		return "IoError"
	case KindUnsupportedShell:
		return "UnsupportedShell"
	default:
		return "Unknown"
	}
}

// Error is dela's single error type across every subsystem. Code never
// panics for flow control (spec §7); every recoverable failure is
// returned as one of these, wrapping the underlying cause when present.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error of the given Kind around an existing cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind of err if it is (or wraps) a *Error, and
// whether extraction succeeded.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
