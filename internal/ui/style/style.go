// Package style provides the shared color palette and icons used for
// console output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Green  = lipgloss.Color("#2FB344")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#22B8CF")
	Slate  = lipgloss.Color("#667085")
)

// Tags and icons.
const (
	DebugTag = "[ DEBUG! ]"
	Check    = "✓"
	Cross    = "✗"
	Ellipsis = "..."
)
