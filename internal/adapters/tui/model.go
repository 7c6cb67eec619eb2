package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listWidthRatio     = 0.3
	contentBorderWidth = 4
	headerHeight       = 2
)

// Page is one entry of the browser: a project and its rendered prediction.
type Page struct {
	Title  string
	Body   string
	Failed bool
}

// Model represents the browser state.
type Model struct {
	Pages       []Page
	SelectedIdx int
	Viewport    viewport.Model
	ListHeight  int
}

// Init initializes the model.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.selectPage(m.SelectedIdx - 1)
			return m, nil
		case "down", "j":
			m.selectPage(m.SelectedIdx + 1)
			return m, nil
		case "home", "g":
			m.selectPage(0)
			return m, nil
		case "end", "G":
			m.selectPage(len(m.Pages) - 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * listWidthRatio)
		m.Viewport.Width = max(msg.Width-listWidth-contentBorderWidth, 0)
		m.Viewport.Height = max(msg.Height-headerHeight, 0)
		m.ListHeight = max(msg.Height-headerHeight, 0)
		m.showSelected()
		return m, nil
	}

	// Remaining keys scroll the selected page.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// Selected returns the page currently shown, or false when there are no pages.
//
//nolint:gocritic // hugeParam ignored
func (m Model) Selected() (Page, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Pages) {
		return Page{}, false
	}
	return m.Pages[m.SelectedIdx], true
}

func (m *Model) selectPage(idx int) {
	if len(m.Pages) == 0 {
		return
	}
	idx = min(max(idx, 0), len(m.Pages)-1)
	if idx == m.SelectedIdx {
		return
	}
	m.SelectedIdx = idx
	m.showSelected()
}

func (m *Model) showSelected() {
	page, ok := m.Selected()
	if !ok {
		return
	}
	m.Viewport.SetContent(page.Body)
	m.Viewport.GotoTop()
}

// visibleRange returns the slice of pages that fits the list pane, keeping the
// selection in view.
func (m *Model) visibleRange() (start, end int) {
	n := len(m.Pages)
	if m.ListHeight <= 0 || n <= m.ListHeight {
		return 0, n
	}
	start = max(m.SelectedIdx-m.ListHeight+1, 0)
	return start, min(start+m.ListHeight, n)
}
