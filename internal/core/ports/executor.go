package ports

import (
	"context"
	"io"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
)

// Executor runs a build phase's command.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the phase to completion, streaming child output to the
	// given writers. A non-zero exit is returned as an error.
	Execute(ctx context.Context, phase *domain.Phase, stdout, stderr io.Writer) error
}
