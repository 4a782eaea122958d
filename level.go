package lantern

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Level is the severity taxonomy used throughout the package. The order is
// a verbosity order: Off is the least verbose, Trace the most. A record is
// emitted when its level is at most the effective minimum level of its
// module, and records are never emitted at Off.
type Level uint8

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
	levelMaxForChecksOnly
)

var levelNames = [levelMaxForChecksOnly]string{
	"OFF",
	"ERROR",
	"WARN",
	"INFO",
	"DEBUG",
	"TRACE",
}

// normLevel clamps out-of-range values to LevelOff.
func normLevel(l Level) Level {
	if l < levelMaxForChecksOnly {
		return l
	}
	return LevelOff
}

func (l Level) String() string {
	return levelNames[normLevel(l)]
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("unknown log level %q", s)
}

// zapTrace sits below zapcore.DebugLevel; zapcore treats levels as plain
// int8 thresholds, so extending downward is safe.
const zapTrace = zapcore.DebugLevel - 1

// zap maps a record level onto the backend's level space. Off has no
// record mapping and is handled by zapThreshold.
func (l Level) zap() zapcore.Level {
	switch normLevel(l) {
	case LevelError:
		return zapcore.ErrorLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelTrace:
		return zapTrace
	default:
		return zapcore.FatalLevel + 1
	}
}

// zapThreshold maps a minimum level onto the backend's level space as an
// inclusive floor: a record passes when its zap level is >= the threshold.
// Off yields a threshold above every real level, so nothing passes.
func zapThreshold(min Level) zapcore.Level {
	return min.zap()
}

func levelFromZap(l zapcore.Level) Level {
	switch {
	case l <= zapTrace:
		return LevelTrace
	case l == zapcore.DebugLevel:
		return LevelDebug
	case l == zapcore.InfoLevel:
		return LevelInfo
	case l == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// yaml.v3 does not consult encoding.TextUnmarshaler, so Level implements
// the yaml interfaces as well. Map keys go through the same path.
func (l Level) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return l.UnmarshalText([]byte(s))
}
