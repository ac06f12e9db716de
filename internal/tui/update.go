package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.ListViewport.Width = msg.Width
		m.ListViewport.Height = listHeight(msg.Height)
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				// Keep the search active, leave input mode
				m.InputMode = false
				m.InputBuffer.Blur()
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				m.clearSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.clearSearch()
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "a":
			m.KeepersOnly = !m.KeepersOnly
			m.applyFilter()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
		m.syncViewport()
	}

	return m, cmd
}

func (m *AppModel) clearSearch() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.applyFilter()
}

// applyFilter recomputes the visible entries from the keepers toggle and the
// search term.
func (m *AppModel) applyFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	m.SearchActive = term != ""

	indices := make([]int, 0, len(m.Result.Entries))
	for i, e := range m.Result.Entries {
		if m.KeepersOnly && !e.Kept() {
			continue
		}
		if m.SearchActive && !strings.Contains(strings.ToLower(e.Value), term) {
			continue
		}
		indices = append(indices, i)
	}
	m.FilteredIndices = indices

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
	m.syncViewport()
}

// syncViewport refreshes the list content and scrolls so the selected row
// stays visible.
func (m *AppModel) syncViewport() {
	m.ListViewport.SetContent(m.renderList())

	h := m.ListViewport.Height
	if h < 1 {
		return
	}
	off := m.ListViewport.YOffset
	if m.SelectedIdx < off {
		off = m.SelectedIdx
	} else if m.SelectedIdx >= off+h {
		off = m.SelectedIdx - h + 1
	}
	m.ListViewport.SetYOffset(off)
}

func listHeight(total int) int {
	// Title, blank line, footer, search line
	h := total - 4
	if h < 1 {
		h = 1
	}
	return h
}
