package lantern

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Defaults used by Builder.Apply for every field the caller leaves unset.

// DefaultColors returns the baseline level colors, same as
// DefaultConfig().Colors.
func DefaultColors() map[Level]string {
	return DefaultConfig().Colors
}

// DefaultMinLevel returns LevelInfo.
func DefaultMinLevel() Level {
	return LevelInfo
}

// DefaultOutputs returns a single console sink on stdout.
func DefaultOutputs() []Output {
	return []Output{NewConsoleOutput()}
}

// DefaultRotation returns the baseline rotation policy: roll daily-aged
// files out after one day, retain 10 rolled files, 100 MB size ceiling.
func DefaultRotation() RotationPolicy {
	return RotationPolicy{
		MaxSizeMB:  100,
		MaxAgeDays: 1,
		MaxBackups: 10,
	}
}

// DefaultFormat returns the baseline line format:
//
//	[2024-11-12T21:10:32Z example.module.path INFO ] This is a log message
//
// The timestamp is RFC3339 at second precision in UTC, the module name is
// left-aligned and truncated to 30 characters, the level label is
// left-aligned to 5 and colorized for sinks that support it.
func DefaultFormat() FormatFunc {
	return func(ent zapcore.Entry, colors *levelColors) string {
		target := ent.LoggerName
		if len(target) > 30 {
			target = target[:30]
		}
		return fmt.Sprintf("[%s %-30s %s] %s",
			ent.Time.UTC().Truncate(time.Second).Format(time.RFC3339),
			target,
			colors.render(levelFromZap(ent.Level)),
			ent.Message,
		)
	}
}
