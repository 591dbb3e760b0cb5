// Package progress records task lifecycle events as progrock vertices for
// external progress UIs.
package progress

import (
	"errors"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/events"
)

// Recorder subscribes to the event bus and mirrors every scope's lifecycle
// onto a progrock recording: start opens a vertex, any terminal event
// closes it.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	vertices map[string]*progrock.VertexRecorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to the given progrock writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertices: make(map[string]*progrock.VertexRecorder),
	}
}

// Attach subscribes the recorder to the bus and returns the unsubscribe
// function.
func (r *Recorder) Attach(bus *events.Bus) func() {
	return bus.Subscribe(r.handle)
}

func (r *Recorder) handle(event domain.TaskEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch event.Type {
	case domain.EventTypeStart:
		v := r.rec.Vertex(digest.FromString(event.Scope), event.Scope)
		r.vertices[event.Scope] = v
	case domain.EventTypeReady, domain.EventTypeFinished:
		if v, ok := r.vertices[event.Scope]; ok {
			v.Done(nil)
			delete(r.vertices, event.Scope)
		}
	case domain.EventTypeFailed:
		if v, ok := r.vertices[event.Scope]; ok {
			v.Done(errors.New(event.Msg))
			delete(r.vertices, event.Scope)
		}
	}
}

// Close finishes any still-open vertices and closes the underlying writer
// when it supports closing.
func (r *Recorder) Close() error {
	r.mu.Lock()
	for scope, v := range r.vertices {
		v.Done(nil)
		delete(r.vertices, scope)
	}
	r.mu.Unlock()

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
