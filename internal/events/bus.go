// Package events implements the process-wide task event bus.
package events

import (
	"sync"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
)

var _ ports.EventBus = (*Bus)(nil)

// Bus fans TaskEvents out to subscribers. Emission is synchronous and
// fire-and-forget: subscribers run in the emitting goroutine and there is
// no backpressure. Safe for concurrent emission from multiple loggers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(domain.TaskEvent)
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]func(domain.TaskEvent))}
}

// Subscribe registers a handler for every future event and returns its
// cancel function. Handlers registered during an emission do not receive
// the in-flight event.
func (b *Bus) Subscribe(fn func(domain.TaskEvent)) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Emit publishes the event to all current subscribers.
func (b *Bus) Emit(event domain.TaskEvent) {
	b.mu.RLock()
	handlers := make([]func(domain.TaskEvent), 0, len(b.subs))
	for _, fn := range b.subs {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range handlers {
		fn(event)
	}
}
