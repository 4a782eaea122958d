package lantern

import "errors"

// Setup-time error kinds. Callers discriminate with errors.Is; setup never
// retries, never partially installs, and never logs through a logger that
// does not exist yet (that is what the fallback functions are for).
var (
	// ErrConfigBuild marks a structurally invalid configuration, such as
	// an empty output list or a missing format function.
	ErrConfigBuild = errors.New("invalid logger configuration")

	// ErrBackendInstall marks a configuration the backend cannot install.
	ErrBackendInstall = errors.New("logger backend install failed")

	// ErrRotationTarget marks an I/O failure preparing a file sink's
	// target, such as a missing directory or an unwritable path. It is
	// reported by the sink constructors, before any install is attempted.
	ErrRotationTarget = errors.New("log file target unavailable")
)
