package lantern

import (
	"fmt"
	"io"
	"os"
)

// Per-level logging entry points that work whether or not Setup has run.
// Once a logger is installed they forward through it; before that they
// write the formatted line directly to the console, bypassing all
// formatting and filtering policy. Error-level messages fall back to
// stderr, everything else to stdout.

// Swappable for tests.
var (
	fallbackOut io.Writer = os.Stdout
	fallbackErr io.Writer = os.Stderr
	exit                  = os.Exit
)

// Errorf logs at the error level, or prints to stderr before setup.
func Errorf(format string, args ...any) {
	emit(LevelError, format, args)
}

// Warnf logs at the warn level, or prints to stdout before setup.
func Warnf(format string, args ...any) {
	emit(LevelWarn, format, args)
}

// Infof logs at the info level, or prints to stdout before setup.
func Infof(format string, args ...any) {
	emit(LevelInfo, format, args)
}

// Debugf logs at the debug level, or prints to stdout before setup.
func Debugf(format string, args ...any) {
	emit(LevelDebug, format, args)
}

// Tracef logs at the trace level, or prints to stdout before setup.
func Tracef(format string, args ...any) {
	emit(LevelTrace, format, args)
}

// Fatalf logs at the error level and then terminates the process with
// exit code 1. The log side effect always runs first, set up or not.
func Fatalf(format string, args ...any) {
	emit(LevelError, format, args)
	exit(1)
}

// Panicf logs at the error level and then panics. Intended for "should
// never happen" conditions; like Fatalf it logs before terminating.
func Panicf(format string, args ...any) {
	emit(LevelError, format, args)
	panic(fmt.Sprintf(format, args...))
}

func emit(level Level, format string, args []any) {
	if l := active.Load(); l != nil {
		l.Log(level.zap(), fmt.Sprintf(format, args...))
		return
	}
	w := fallbackOut
	if level == LevelError {
		w = fallbackErr
	}
	fmt.Fprintf(w, format+"\n", args...)
}
