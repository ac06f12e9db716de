package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tidypath/internal/model"
)

func sample() model.Result {
	return model.Result{
		Entries: []model.PathEntry{
			{Index: 0, Value: "/usr/bin", Code: 0},
			{Index: 1, Value: "/opt/tool/bin", Code: 2},
			{Index: 2, Value: "/usr/bin", Code: 1},
			{Index: 3, Value: "/bin", Code: 0},
		},
		Kept: []string{"/usr/bin", "/bin"},
	}
}

func press(t *testing.T, m AppModel, keys ...tea.KeyMsg) AppModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(AppModel)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialModel(t *testing.T) {
	m := InitialModel("PATH", sample())
	assert.Equal(t, []int{0, 1, 2, 3}, m.FilteredIndices)
	assert.Equal(t, 0, m.SelectedIdx)
	assert.Contains(t, m.View(), "PATH")
	assert.Contains(t, m.View(), "original 4  final 2  removed 2")
}

func TestNavigation(t *testing.T) {
	m := InitialModel("PATH", sample())

	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 3, m.SelectedIdx)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.SelectedIdx)

	m = press(t, m, runes("k"), runes("k"), runes("k"))
	assert.Equal(t, 0, m.SelectedIdx)
}

func TestToggleKeepers(t *testing.T) {
	m := InitialModel("PATH", sample())
	m = press(t, m, runes("j"), runes("j"), runes("j"))

	m = press(t, m, runes("a"))
	assert.True(t, m.KeepersOnly)
	assert.Equal(t, []int{0, 3}, m.FilteredIndices)
	assert.Equal(t, 1, m.SelectedIdx)

	m = press(t, m, runes("a"))
	assert.Equal(t, []int{0, 1, 2, 3}, m.FilteredIndices)
}

func TestSearch(t *testing.T) {
	m := InitialModel("PATH", sample())

	m = press(t, m, runes("/"))
	require.True(t, m.InputMode)

	m = press(t, m, runes("u"), runes("s"), runes("r"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.InputMode)
	assert.True(t, m.SearchActive)
	assert.Equal(t, []int{0, 2}, m.FilteredIndices)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.SearchActive)
	assert.Equal(t, []int{0, 1, 2, 3}, m.FilteredIndices)
}

func TestSearchNoMatch(t *testing.T) {
	m := InitialModel("PATH", sample())
	m = press(t, m, runes("/"), runes("z"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, m.FilteredIndices)
	assert.Equal(t, 0, m.SelectedIdx)
	assert.Contains(t, m.View(), "(no entries)")
}

func TestQuit(t *testing.T) {
	m := InitialModel("PATH", sample())
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowSizeKeepsSelectionVisible(t *testing.T) {
	m := InitialModel("PATH", sample())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 6})
	m = next.(AppModel)
	assert.Equal(t, 2, m.ListViewport.Height)

	m = press(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, m.ListViewport.YOffset)
}
