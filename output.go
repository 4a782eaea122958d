package lantern

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output is a destination for formatted log lines. Sinks are attached in
// the order the caller supplies them; each gets its own copy of the level
// colors so terminal sinks render color while files stay plain.
type Output struct {
	ws      zapcore.WriteSyncer
	colored bool
}

// RotationPolicy pairs a rotation trigger with a fixed retention window
// for file sinks. The backing engine rotates when the active file exceeds
// MaxSizeMB, expires rolled files older than MaxAgeDays, and keeps at most
// MaxBackups rolled files.
type RotationPolicy struct {
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// NewConsoleOutput returns a sink on stdout. Color is enabled only when
// stdout is a terminal.
func NewConsoleOutput() Output {
	return Output{
		ws:      zapcore.Lock(os.Stdout),
		colored: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewWriterOutput wraps an arbitrary writer as an uncolored sink.
func NewWriterOutput(w io.Writer) Output {
	return Output{ws: zapcore.AddSync(w)}
}

// NewColoredWriterOutput wraps an arbitrary writer as a sink that renders
// level colors, for callers piping to a color-capable terminal emulator.
func NewColoredWriterOutput(w io.Writer) Output {
	return Output{ws: zapcore.AddSync(w), colored: true}
}

// NewFileOutput opens (creating if necessary) a plain append-only file
// sink without rotation.
func NewFileOutput(path string) (Output, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrRotationTarget, err)
	}
	return Output{ws: zapcore.Lock(f)}, nil
}

// NewRotatingFileOutput returns a file sink rolled according to policy.
// The rotation engine creates files lazily, so the target is probed here
// to surface unwritable paths at configuration time rather than on the
// first write.
func NewRotatingFileOutput(path string, policy RotationPolicy) (Output, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrRotationTarget, err)
	}
	if err := f.Close(); err != nil {
		return Output{}, fmt.Errorf("%w: %v", ErrRotationTarget, err)
	}
	roller := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    policy.MaxSizeMB,
		MaxAge:     policy.MaxAgeDays,
		MaxBackups: policy.MaxBackups,
		Compress:   policy.Compress,
	}
	return Output{ws: zapcore.AddSync(roller)}, nil
}
