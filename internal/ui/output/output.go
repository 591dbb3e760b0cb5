// Package output creates termenv outputs with consistent color-profile and
// NO_COLOR handling for all console writers.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for console output. NO_COLOR
// forces plain ASCII; otherwise the terminal's capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output for the given writer using the shared
// profile logic. A nil writer defaults to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Foreground returns a decoration function coloring text with the given
// palette color on the given output. Under an Ascii profile the text is
// returned unchanged.
func Foreground(o *termenv.Output, c lipgloss.Color) func(string) string {
	return func(s string) string {
		return o.String(s).Foreground(termenv.RGBColor(string(c))).String()
	}
}

// Faint returns a decoration function dimming text on the given output.
func Faint(o *termenv.Output) func(string) string {
	return func(s string) string {
		return o.String(s).Faint().String()
	}
}
