package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m AppModel) View() string {
	var b strings.Builder

	title := "tidypath"
	if m.Name != "" {
		title += ": " + m.Name
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("  (no entries)"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.ListViewport.View())
		b.WriteString("\n")
	}

	if m.InputMode {
		b.WriteString("Search: " + m.InputBuffer.View())
	} else if m.SearchActive {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Search: %q (esc to clear)", m.InputBuffer.Value())))
	}
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

// renderList draws one line per visible entry.
func (m AppModel) renderList() string {
	var b strings.Builder
	for i, idx := range m.FilteredIndices {
		e := m.Result.Entries[idx]
		line := fmt.Sprintf("%4d %d %s %s", idx+1, e.Code, e.Code.Icon(), e.Value)

		// Truncate
		if w := m.ListViewport.Width; w > 5 && len(line) > w {
			line = line[:w-3] + "..."
		}

		switch {
		case i == m.SelectedIdx:
			b.WriteString(selectedStyle.Render(line))
		case !e.Kept():
			b.WriteString(removedStyle.Render(line))
		default:
			b.WriteString(normalStyle.Render(line))
		}
		if i < len(m.FilteredIndices)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m AppModel) footer() string {
	mode := "all"
	if m.KeepersOnly {
		mode = "kept"
	}
	summary := fmt.Sprintf("original %d  final %d  removed %d  [%s]",
		m.Result.Original(), m.Result.Final(), m.Result.Removed(), mode)
	keys := "↑/↓ move • a all/kept • / search • q quit"
	return dimStyle.Render(summary + "  " + keys)
}
