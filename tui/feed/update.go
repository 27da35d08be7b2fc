package feed

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/tui/common"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case common.FeedMsg:
		m.videos = msg.Videos
		m.clampCursor()
		return m, nil

	case common.LoadingMsg:
		m.loading = msg.Loading
		return m, nil

	case common.ErrMsg:
		m.errMsg = msg.Message
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.videos) {
		m.cursor = len(m.videos) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
