// Package tui provides an interactive browser for prediction results.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
)

// NewModel creates a browser over pages with the first page selected.
func NewModel(pages []Page) Model {
	m := Model{
		Pages:    pages,
		Viewport: viewport.New(0, 0),
	}
	m.showSelected()
	return m
}

// Run shows pages in an interactive program until the user quits or ctx is done.
func Run(ctx context.Context, pages []Page, opts ...tea.ProgramOption) error {
	if len(pages) == 0 {
		return nil
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(pages), opts...).Run(); err != nil {
		return zerr.Wrap(err, "prediction browser failed")
	}
	return nil
}
