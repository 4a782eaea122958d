// Package lantern configures application logging once, process-wide.
//
// A fluent Builder assembles the policy (output sinks, minimum level,
// per-module level overrides, colorized console formatting, optional file
// rotation) and installs it as the global logger; every field the caller
// leaves unset resolves to a documented default. Repeat Setup calls
// atomically swap the active configuration instead of failing.
//
// The package-level Errorf/Warnf/Infof/Debugf/Tracef functions are safe to
// call at any time: before setup they print directly to the console
// (stderr for errors, stdout otherwise), afterwards they route through the
// installed logger.
//
//	err := lantern.NewBuilder(lantern.DefaultFormat()).
//		WithConfig(lantern.DefaultConfig()).
//		WithModuleLevel("db", lantern.LevelDebug).
//		Apply()
//	if err != nil {
//		lantern.Errorf("logger setup failed: %v", err)
//	}
//	lantern.Infof("starting up")
package lantern
