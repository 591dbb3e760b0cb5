package ports

import "github.com/hayuki/ionic-app-scripts/internal/core/domain"

// EventBus is the process-wide publish surface for task lifecycle events.
// Emission is fire-and-forget: no acknowledgment, no backpressure. It must
// be safe for concurrent use by multiple loggers.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type EventBus interface {
	Emit(event domain.TaskEvent)
}
