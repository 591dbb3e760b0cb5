package config

// File represents the structure of the appscripts.yaml configuration file.
type File struct {
	Version string      `yaml:"version"`
	Debug   bool        `yaml:"debug"`
	Phases  []*PhaseDTO `yaml:"phases"`
	Watch   WatchDTO    `yaml:"watch"`
}

// PhaseDTO represents one build phase in the configuration.
type PhaseDTO struct {
	Name       string            `yaml:"name"`
	Cmd        []string          `yaml:"cmd"`
	WorkingDir string            `yaml:"workingDir"`
	Env        map[string]string `yaml:"env"`
}

// WatchDTO represents the watch-mode section of the configuration.
type WatchDTO struct {
	Paths      []string `yaml:"paths"`
	DebounceMS int      `yaml:"debounceMs"`
}
