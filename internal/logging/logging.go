// Package logging wraps log/slog into the leveled logger whose level the
// --verbose flag sets (see SPEC_FULL.md's AMBIENT STACK). Its only caller
// is the allowlist store, which logs read and parse failures as warnings;
// discovery and runner resolution do not log. Nothing in the retrieval
// pack offers a lighter-weight structured logger than the standard
// library's own, so this one package is the documented stdlib exception
// (see DESIGN.md).
package logging

import (
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
)

// Init configures the process-wide logger. verbose selects slog.LevelDebug;
// otherwise only warnings and above are emitted.
func Init(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// L returns the process-wide logger, lazily defaulting to non-verbose.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return logger
}
