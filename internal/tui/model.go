package tui

import (
	"tidypath/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Name   string
	Result model.Result

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	KeepersOnly bool // Hide entries that were removed ('a' toggles)

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Result.Entries to show
	SearchActive    bool

	// Components
	ListViewport viewport.Model
}

// InitialModel returns the initial state for browsing res.
func InitialModel(name string, res model.Result) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Substring..."
	ti.CharLimit = 50
	ti.Width = 20

	m := AppModel{
		Name:         name,
		Result:       res,
		InputBuffer:  ti,
		ListViewport: viewport.New(80, 20),
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return nil
}
