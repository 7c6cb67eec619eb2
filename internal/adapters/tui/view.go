package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the project list next to the selected prediction.
//
//nolint:gocritic // hugeParam ignored
func (m Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.pageList(),
		m.contentPane(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m Model) pageList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("PROJECTS (%d)", len(m.Pages))) + "\n\n")

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		page := m.Pages[i]

		icon, style := "✓", pageStyle
		if page.Failed {
			icon, style = "✗", pageFailedStyle
		}

		line := fmt.Sprintf("%s %s", icon, page.Title)
		if i == m.SelectedIdx {
			s.WriteString(selectedStyle.Render("> "+line) + "\n")
			continue
		}
		s.WriteString(style.Render("  "+line) + "\n")
	}

	return listStyle.Render(s.String())
}

//nolint:gocritic // hugeParam ignored
func (m Model) contentPane() string {
	header := titleStyle.Render("PREDICTION")
	if page, ok := m.Selected(); ok {
		header = titleStyle.Render("PREDICTION: " + page.Title)
	}

	return contentStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}
