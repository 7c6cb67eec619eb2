// Package style provides the shared colors and icons of the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Heading renders a section heading with the given renderer.
func Heading(r *lipgloss.Renderer, s string) string {
	return r.NewStyle().Bold(true).Foreground(Iris).Render(s)
}

// Muted renders secondary text such as predictor tags.
func Muted(r *lipgloss.Renderer, s string) string {
	return r.NewStyle().Foreground(Slate).Render(s)
}

// Failure renders a failure line.
func Failure(r *lipgloss.Renderer, s string) string {
	return r.NewStyle().Foreground(Red).Render(Cross + " " + s)
}
