// Package config provides the appscripts.yaml configuration loader.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
)

// FileName is the configuration file discovered by Load.
const FileName = "appscripts.yaml"

// defaultDebounce is used when the watch section does not set one.
const defaultDebounce = 200 * time.Millisecond

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers appscripts.yaml starting at cwd and walking upward, then
// parses and validates it.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	path, err := l.find(cwd)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path discovered from cwd
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.toProject(filepath.Dir(path), &file)
}

func (l *Loader) find(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
		}
		dir = parent
	}
}

func (l *Loader) toProject(root string, file *File) (*domain.Project, error) {
	if len(file.Phases) == 0 {
		return nil, zerr.With(domain.ErrNoPhases, "root", root)
	}

	seen := make(map[string]bool, len(file.Phases))
	phases := make([]domain.Phase, 0, len(file.Phases))
	for _, dto := range file.Phases {
		if seen[dto.Name] {
			return nil, zerr.With(domain.ErrDuplicatePhaseName, "phase", dto.Name)
		}
		seen[dto.Name] = true

		if len(dto.Cmd) == 0 {
			return nil, zerr.With(domain.ErrEmptyPhaseCommand, "phase", dto.Name)
		}

		workingDir := dto.WorkingDir
		if workingDir != "" && !filepath.IsAbs(workingDir) {
			workingDir = filepath.Join(root, workingDir)
		}

		phases = append(phases, domain.Phase{
			Name:       dto.Name,
			Command:    dto.Cmd,
			WorkingDir: workingDir,
			Env:        dto.Env,
		})
	}

	debounce := defaultDebounce
	if file.Watch.DebounceMS > 0 {
		debounce = time.Duration(file.Watch.DebounceMS) * time.Millisecond
	}

	return &domain.Project{
		Root:   root,
		Debug:  file.Debug,
		Phases: phases,
		Watch: domain.WatchConfig{
			Paths:    file.Watch.Paths,
			Debounce: debounce,
		},
	}, nil
}
