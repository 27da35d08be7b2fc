package feed

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.Refresh()

	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints

	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < len(m.videos) {
			m.cursor += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < len(m.videos)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Open):
		v, ok := m.SelectedVideo()
		if !ok {
			break
		}
		return m, func() tea.Msg { return OpenPlayerMsg{Video: v} }
	}

	return m, nil
}
