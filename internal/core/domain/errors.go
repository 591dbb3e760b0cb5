package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no appscripts.yaml is found walking
	// up from the working directory.
	ErrConfigNotFound = zerr.New("could not find appscripts.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoPhases is returned when a configuration declares no build phases.
	ErrNoPhases = zerr.New("no build phases configured")

	// ErrDuplicatePhaseName is returned when two phases share a name.
	ErrDuplicatePhaseName = zerr.New("duplicate phase name")

	// ErrEmptyPhaseCommand is returned when a phase declares no command.
	ErrEmptyPhaseCommand = zerr.New("phase declares no command")

	// ErrBuildFailed is returned when the build pipeline terminates with a
	// failed phase.
	ErrBuildFailed = zerr.New("build failed")

	// ErrWatchSetupFailed is returned when the file watcher cannot be
	// initialized.
	ErrWatchSetupFailed = zerr.New("failed to set up file watcher")
)
