package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"

	"github.com/hayuki/ionic-app-scripts/internal/ui/output"
	"github.com/hayuki/ionic-app-scripts/internal/ui/style"
)

// ColorFunc decorates a string for terminal display. It may be nil
// anywhere one is accepted; text then passes through undecorated.
type ColorFunc func(string) string

// Printer owns the severity print channels. Log, info and debug lines go
// to the out stream; warnings and errors go to the err stream. All
// process-global inputs (debug flag, clock, memory sampler) are injected
// so output is deterministic under test. Calls are serialized, so lines
// from one call never interleave with another.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer

	outStyle *termenv.Output
	errStyle *termenv.Output

	clock clockwork.Clock
	debug func() bool
	rss   func() uint64
}

// Option configures a Printer.
type Option func(*Printer)

// WithWriters sets the out and err streams.
func WithWriters(out, err io.Writer) Option {
	return func(p *Printer) {
		if out != nil {
			p.out = out
		}
		if err != nil {
			p.err = err
		}
	}
}

// WithClock sets the clock used for the time tag and task durations.
func WithClock(clock clockwork.Clock) Option {
	return func(p *Printer) { p.clock = clock }
}

// WithDebug sets the debug-mode query. The printer only ever reads it.
func WithDebug(debug func() bool) Option {
	return func(p *Printer) { p.debug = debug }
}

// WithDebugMode fixes debug mode to a constant value.
func WithDebugMode(enabled bool) Option {
	return WithDebug(func() bool { return enabled })
}

// WithMemorySampler sets the accessor for the process resident set size in
// bytes.
func WithMemorySampler(rss func() uint64) Option {
	return func(p *Printer) { p.rss = rss }
}

// NewPrinter creates a Printer writing to stdout/stderr with a real clock,
// debug mode off, and the Go runtime as memory sampler.
func NewPrinter(opts ...Option) *Printer {
	p := &Printer{
		out:   os.Stdout,
		err:   os.Stderr,
		clock: clockwork.NewRealClock(),
		debug: func() bool { return false },
		rss:   runtimeRSS,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.outStyle = output.New(p.out)
	p.errStyle = output.New(p.err)
	return p
}

// runtimeRSS approximates the resident set size with the total bytes the
// runtime has obtained from the OS.
func runtimeRSS() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.Sys
}

// Out returns the raw out stream, for callers that pass through child
// process output untouched.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Err returns the raw err stream.
func (p *Printer) Err() io.Writer {
	return p.err
}

// Clock returns the injected clock, for loggers that share it.
func (p *Printer) Clock() clockwork.Clock {
	return p.clock
}

// DebugMode reports whether verbose diagnostic output is enabled.
func (p *Printer) DebugMode() bool {
	return p.debug()
}

// Dim renders text faint on the out stream.
func (p *Printer) Dim(s string) string {
	return output.Faint(p.outStyle)(s)
}

// Color returns a decoration function for the given palette color on the
// out stream.
func (p *Printer) Color(c lipgloss.Color) ColorFunc {
	return ColorFunc(output.Foreground(p.outStyle, c))
}

// Log prints the wrapped lines without decoration.
func (p *Printer) Log(args ...any) {
	lines := WordWrap(Values(args...))

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

// Info prints the wrapped lines, overwriting the indent of the first line
// with a dim clock tag. In debug mode a memory suffix is appended to the
// message before wrapping.
func (p *Printer) Info(args ...any) {
	if p.debug() {
		args = append(args, p.memoryUsage())
	}
	lines := WordWrap(Values(args...))
	if len(lines) > 0 {
		tag := p.timeTag()
		lines[0] = p.Dim(tag) + afterTag(lines[0], tag)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

// Warn prints the wrapped lines to the err stream, whole lines colored as
// warnings, with the clock tag on the first line.
func (p *Printer) Warn(args ...any) {
	lines := WordWrap(Values(args...))
	if len(lines) > 0 {
		tag := p.timeTag()
		lines[0] = tag + afterTag(lines[0], tag)
	}
	warn := output.Foreground(p.errStyle, style.Yellow)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(p.err, warn(line))
	}
}

// Error prints the wrapped lines to the err stream, whole lines colored as
// errors, with the clock tag on the first line. In debug mode the memory
// suffix is appended to the first line.
func (p *Printer) Error(args ...any) {
	lines := WordWrap(Values(args...))
	if len(lines) > 0 {
		tag := p.timeTag()
		lines[0] = tag + afterTag(lines[0], tag)
		if p.debug() {
			lines[0] += " " + p.memoryUsage()
		}
	}
	fail := output.Foreground(p.errStyle, style.Red)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(p.err, fail(line))
	}
}

// Debug prints only in debug mode: wrapped lines with the memory usage as
// a trailing word, the first line tagged with a literal debug marker
// instead of the clock, colored as a trace.
func (p *Printer) Debug(args ...any) {
	if !p.debug() {
		return
	}

	args = append(args, p.memoryUsage())
	lines := WordWrap(Values(args...))
	if len(lines) > 0 {
		lines[0] = style.DebugTag + afterTag(lines[0], style.DebugTag)
	}
	trace := output.Foreground(p.outStyle, style.Cyan)

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, line := range lines {
		fmt.Fprintln(p.out, trace(line))
	}
}

// NewLine prints an empty line to the out stream.
func (p *Printer) NewLine() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out)
}

// timeTag renders the dim-able clock prefix. Its width must stay at or
// under the indent width so overwriting the indent keeps alignment.
func (p *Printer) timeTag() string {
	return "[" + p.clock.Now().Format("15:04:05") + "]"
}

// memoryUsage reports the resident set size in megabytes to one decimal.
func (p *Printer) memoryUsage() string {
	return fmt.Sprintf("MEM: %.1fMB", float64(p.rss())/1e6)
}

// afterTag returns the remainder of line once the tag's columns are
// overwritten. The tag replaces, not prepends, the leading indent.
func afterTag(line, tag string) string {
	if len(line) <= len(tag) {
		return ""
	}
	return line[len(tag):]
}
