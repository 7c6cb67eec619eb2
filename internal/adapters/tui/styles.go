package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")
	colorWhite = lipgloss.Color("#FFFFFF")

	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorSlate).
			MarginRight(1).
			PaddingRight(1)

	contentStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	pageStyle = lipgloss.NewStyle().
			Foreground(colorSlate)

	pageFailedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(colorIris).
			Foreground(colorWhite)
)
