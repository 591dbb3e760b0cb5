package domain

import (
	"strings"
	"time"
)

// EventType identifies a lifecycle transition of a named build scope.
type EventType string

const (
	// EventTypeStart indicates the scope has begun executing.
	EventTypeStart EventType = "start"
	// EventTypeReady indicates the scope completed and the tool is ready for interaction.
	EventTypeReady EventType = "ready"
	// EventTypeFinished indicates the scope completed successfully.
	EventTypeFinished EventType = "finished"
	// EventTypeFailed indicates the scope terminated with an error.
	EventTypeFailed EventType = "failed"
)

// IsTerminal reports whether the event type ends a scope's lifecycle.
func (t EventType) IsTerminal() bool {
	switch t {
	case EventTypeReady, EventTypeFinished, EventTypeFailed:
		return true
	default:
		return false
	}
}

// TaskEvent describes a lifecycle transition of a build scope. It is
// published on the process-wide event bus and must not be mutated after
// emission.
type TaskEvent struct {
	// Scope is the short machine-stable identifier of the task: the first
	// whitespace-delimited token of the full scope name.
	Scope string
	// Type is the lifecycle transition being announced.
	Type EventType
	// Duration is the elapsed wall time of the task. Only set on terminal
	// completion events.
	Duration time.Duration
	// Time is the human-readable rendering of Duration ("in 2.30 s").
	Time string
	// Msg is the human-readable summary line for the transition.
	Msg string
}

// ScopeID returns the short identifier for a full scope name: its first
// whitespace-delimited token. A scope of "Build app" yields "Build".
func ScopeID(scope string) string {
	fields := strings.Fields(scope)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
