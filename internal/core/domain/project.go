package domain

import "time"

// Phase is one named step of the build pipeline (compile, bundle, sass...).
// Each phase owns exactly one Logger per run.
type Phase struct {
	Name       string
	Command    []string
	WorkingDir string
	Env        map[string]string
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// Paths are the directories observed for changes, relative to the
	// project root. Empty means the root itself.
	Paths []string
	// Debounce is the quiet window used to coalesce bursts of file events
	// into a single rebuild.
	Debounce time.Duration
}

// Project is the loaded build configuration.
type Project struct {
	// Root is the absolute directory containing appscripts.yaml.
	Root string
	// Debug enables verbose output: stack traces, memory usage and
	// repeated failure traces.
	Debug bool
	// Phases is the ordered build pipeline.
	Phases []Phase
	// Watch configures watch mode.
	Watch WatchConfig
}

// Phase returns the named phase, or nil when it does not exist.
func (p *Project) Phase(name string) *Phase {
	for i := range p.Phases {
		if p.Phases[i].Name == name {
			return &p.Phases[i]
		}
	}
	return nil
}
