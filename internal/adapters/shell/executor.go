// Package shell implements the phase executor using os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/zerr"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
)

var _ ports.Executor = (*Executor)(nil)

// Executor runs phase commands as child processes.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the phase's command to completion, streaming its output to
// the given writers. The child inherits the parent environment plus the
// phase's own variables.
func (e *Executor) Execute(ctx context.Context, phase *domain.Phase, stdout, stderr io.Writer) error {
	if phase == nil || len(phase.Command) == 0 {
		return zerr.With(domain.ErrEmptyPhaseCommand, "phase", phaseName(phase))
	}

	cmd := exec.CommandContext(ctx, phase.Command[0], phase.Command[1:]...) //nolint:gosec // user provided command
	cmd.Dir = phase.WorkingDir
	cmd.Env = mergeEnv(os.Environ(), phase.Env)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(zerr.Wrap(err, "command failed"), "phase", phase.Name),
			"exit_code", exitCode,
		)
	}

	return nil
}

func phaseName(phase *domain.Phase) string {
	if phase == nil {
		return ""
	}
	return phase.Name
}

func mergeEnv(base []string, extra map[string]string) []string {
	if len(extra) == 0 {
		return base
	}
	merged := make([]string, len(base), len(base)+len(extra))
	copy(merged, base)
	for k, v := range extra {
		merged = append(merged, k+"="+v)
	}
	return merged
}
