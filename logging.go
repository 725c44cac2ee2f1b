package glimmer

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for toolkit logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// logger is the toolkit-wide logger. Widgets and backends use it for
// warnings about unsupported platform features and for debug tracing.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables verbose/debug logging for the toolkit.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// debugAsserts controls whether precondition violations panic.
// In release builds they are logged and the call becomes best-effort.
var debugAsserts = false

// SetDebugAsserts makes caller-misuse precondition violations fatal.
// Intended for development and test builds.
func SetDebugAsserts(v bool) {
	debugAsserts = v
}

// assertf reports a caller-misuse precondition violation. It panics when
// debug asserts are enabled; otherwise it logs an error and returns false
// so the caller can bail out.
func assertf(cond bool, msg string, args ...any) bool {
	if cond {
		return true
	}
	if debugAsserts {
		panic("glimmer: " + msg)
	}
	logger.Error(msg, args...)
	return false
}
