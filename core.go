package lantern

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// ModuleLevel is one resolved (module, level) override pair as handed to
// Setup. Later pairs for the same module win.
type ModuleLevel struct {
	Module string
	Level  Level
}

// moduleFilterCore gates records by the global floor and per-module
// overrides before handing them to the sink core. Overrides match the
// record's logger name exactly or as a dot-separated path prefix, longest
// prefix winning, so an override for "db" also covers "db.pool".
type moduleFilterCore struct {
	zapcore.Core
	floor     Level
	overrides map[string]Level
}

func newModuleFilterCore(inner zapcore.Core, floor Level, overrides map[string]Level) zapcore.Core {
	return &moduleFilterCore{Core: inner, floor: floor, overrides: overrides}
}

// Enabled reports whether any module could emit at lvl; the per-record
// decision happens in Check, which knows the logger name.
func (c *moduleFilterCore) Enabled(lvl zapcore.Level) bool {
	if lvl >= zapThreshold(c.floor) {
		return true
	}
	for _, min := range c.overrides {
		if lvl >= zapThreshold(min) {
			return true
		}
	}
	return false
}

func (c *moduleFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &moduleFilterCore{
		Core:      c.Core.With(fields),
		floor:     c.floor,
		overrides: c.overrides,
	}
}

func (c *moduleFilterCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if ent.Level >= zapThreshold(c.thresholdFor(ent.LoggerName)) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// thresholdFor resolves the effective minimum level for a module name by
// trimming trailing path segments until an override matches.
func (c *moduleFilterCore) thresholdFor(name string) Level {
	for name != "" {
		if min, ok := c.overrides[name]; ok {
			return min
		}
		dot := strings.LastIndexByte(name, '.')
		if dot < 0 {
			break
		}
		name = name[:dot]
	}
	return c.floor
}
