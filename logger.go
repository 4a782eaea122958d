package lantern

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings is the fully-resolved parameter set handed to Setup. Builder
// produces it; applications normally never construct it directly.
type Settings struct {
	Colors       []ColorSetting
	MinLogLevel  Level
	ModuleLevels []ModuleLevel
	Outputs      []Output
	Format       FormatFunc
	DebugBuild   bool
}

// The process-wide installation slot. setupMu serializes Setup's
// check-and-act sequence; active is the lock-free view used by IsSetUp and
// the fallback dispatch. active is stored only after the logger is fully
// built and installed, so a true IsSetUp never observes partial state.
var (
	setupMu sync.Mutex
	active  atomic.Pointer[zap.Logger]
)

// IsSetUp reports whether a successful Setup has completed. Safe to call
// concurrently with an in-flight Setup; a race observes either state,
// never a torn one.
func IsSetUp() bool {
	return active.Load() != nil
}

// Setup resolves the settings into a logger and installs it as the
// process-wide global. Repeat calls do not fail: each rebuilds the logger
// and atomically swaps the active configuration, so Setup doubles as the
// reconfigure operation.
//
// All failures are reported before anything is installed; a failed Setup
// leaves the previous installation (or none) fully in effect.
func Setup(s Settings) error {
	if s.Format == nil {
		return fmt.Errorf("%w: no format function", ErrConfigBuild)
	}
	if len(s.Outputs) == 0 {
		return fmt.Errorf("%w: no outputs", ErrConfigBuild)
	}

	floor := effectiveMinLevel(s.MinLogLevel, s.DebugBuild)

	overrides := make(map[string]Level, len(s.ModuleLevels))
	for _, ml := range s.ModuleLevels {
		overrides[ml.Module] = ml.Level
	}

	cores := make([]zapcore.Core, 0, len(s.Outputs))
	for _, out := range s.Outputs {
		if out.ws == nil {
			return fmt.Errorf("%w: output without a destination", ErrBackendInstall)
		}
		enc := newLineEncoder(s.Format, resolveColors(s.Colors, out.colored))
		// The sink core is fully permissive; moduleFilterCore owns the
		// level decision because it needs the record's logger name.
		sink := zapcore.NewCore(enc, out.ws, zapcore.LevelEnabler(zapTrace))
		cores = append(cores, newModuleFilterCore(sink, floor, overrides))
	}

	logger := zap.New(zapcore.NewTee(cores...))

	setupMu.Lock()
	defer setupMu.Unlock()
	zap.ReplaceGlobals(logger)
	active.Store(logger)
	return nil
}

// effectiveMinLevel raises the floor to at least Debug for debug builds.
// It never lowers verbosity: an explicit Trace stays Trace.
func effectiveMinLevel(min Level, debugBuild bool) Level {
	min = normLevel(min)
	if debugBuild && min < LevelDebug {
		return LevelDebug
	}
	return min
}

// Named returns a module-scoped view of the installed logger, suitable for
// emitting records that module-level overrides can match. Before setup it
// returns a no-op logger.
func Named(module string) *zap.Logger {
	if l := active.Load(); l != nil {
		return l.Named(module)
	}
	return zap.NewNop()
}

// reset clears the installation slot. Test hook.
func reset() {
	setupMu.Lock()
	defer setupMu.Unlock()
	active.Store(nil)
}
