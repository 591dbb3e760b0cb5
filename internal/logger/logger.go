package logger

import (
	"errors"
	"fmt"
	"time"

	"github.com/hayuki/ionic-app-scripts/internal/core/domain"
	"github.com/hayuki/ionic-app-scripts/internal/core/ports"
	"github.com/hayuki/ionic-app-scripts/internal/ui/style"
)

// Logger times one task attempt from construction to completion. It emits
// a TaskEvent on start and exactly one terminal TaskEvent on
// Ready/Finish/Fail; there is no transition back. Instances are
// independent: concurrent tasks each own their own Logger.
type Logger struct {
	scope   string
	start   time.Time
	printer *Printer
	bus     ports.EventBus
}

// New starts timing the given scope. It prints the start line and emits
// the start event immediately.
func New(scope string, printer *Printer, bus ports.EventBus) *Logger {
	l := &Logger{
		scope:   scope,
		start:   printer.Clock().Now(),
		printer: printer,
		bus:     bus,
	}

	l.printer.Info(scope+" started", l.printer.Dim(style.Ellipsis))
	l.bus.Emit(domain.TaskEvent{
		Scope: domain.ScopeID(scope),
		Type:  domain.EventTypeStart,
		Msg:   scope + " started ...",
	})

	return l
}

// Scope returns the full scope name being timed.
func (l *Logger) Scope() string {
	return l.scope
}

// Ready completes the task with the "ready" word. An optional color
// function decorates the completion text.
func (l *Logger) Ready(color ...ColorFunc) {
	l.completed(domain.EventTypeReady, firstColor(color))
}

// Finish completes the task with the "finished" word. An optional color
// function decorates the completion text.
func (l *Logger) Finish(color ...ColorFunc) {
	l.completed(domain.EventTypeFinished, firstColor(color))
}

func (l *Logger) completed(word domain.EventType, color ColorFunc) {
	duration := l.printer.Clock().Since(l.start)
	timeStr := FormatDuration(duration)

	l.bus.Emit(domain.TaskEvent{
		Scope:    domain.ScopeID(l.scope),
		Type:     word,
		Duration: duration,
		Time:     timeStr,
		Msg:      fmt.Sprintf("%s %s %s", l.scope, word, timeStr),
	})

	text := fmt.Sprintf("%s %s", l.scope, word)
	if color != nil {
		text = color(text)
	}
	l.printer.Info(text, l.printer.Dim(timeStr))
}

// Fail terminates the task as failed. It never returns a different error
// than it was given, so callers can keep propagating it.
//
// A nil error and an IgnorableError are complete no-ops. Any other error
// emits the failed event unconditionally. A BuildError is additionally
// printed at error severity the first time it is seen anywhere; Fail then
// sets HasBeenLogged on the caller's error object, the one field this
// method owns. Repeated failures and stack traces only surface in debug
// mode.
func (l *Logger) Fail(err error) error {
	if err == nil {
		return nil
	}

	var ignorable *domain.IgnorableError
	if errors.As(err, &ignorable) {
		return err
	}

	l.bus.Emit(domain.TaskEvent{
		Scope: domain.ScopeID(l.scope),
		Type:  domain.EventTypeFailed,
		Msg:   l.scope + " failed",
	})

	var buildErr *domain.BuildError
	if errors.As(err, &buildErr) {
		msg := l.scope + " failed"
		if buildErr.Message != "" {
			msg += ": " + buildErr.Message
		}

		if !buildErr.HasBeenLogged {
			l.printer.Error(msg)
			buildErr.HasBeenLogged = true
			if buildErr.Stack != "" {
				l.printer.Debug(buildErr.Stack)
			}
		} else {
			l.printer.Debug(msg)
		}
	}

	return err
}

// FormatDuration renders an elapsed duration the way completion lines
// show it: seconds with two decimals above one second, whole milliseconds
// below, and a fixed phrase when the duration rounds to zero.
func FormatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	if ms > 1000 {
		return fmt.Sprintf("in %.2f s", float64(ms)/1000)
	}
	if ms > 0 {
		return fmt.Sprintf("in %d ms", ms)
	}
	return "in less than 1 ms"
}

func firstColor(colors []ColorFunc) ColorFunc {
	if len(colors) > 0 {
		return colors[0]
	}
	return nil
}
