package player

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/diff"
	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/tui/common"
)

// Update handles messages for the player view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case common.CatalogMsg:
		return m.applyCatalog(msg.Videos)

	case common.SelectedMsg:
		return m.applySelected(msg.Video), nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// applyCatalog reconciles the rendered list with a new catalog snapshot and
// keeps the screen on the same video when it moved.
func (m Model) applyCatalog(next []domain.Video) (Model, tea.Cmd) {
	currentID := ""
	if cur, ok := m.Current(); ok {
		currentID = cur.ID
	}

	script := diff.Videos(m.videos, next)
	m.lastScript = script
	if !script.Empty() {
		applied, err := diff.Apply(m.videos, script)
		if err != nil {
			applied = next
		}
		m.videos = applied
	}

	if !m.positioned && len(m.videos) > 0 {
		m.index = max(0, indexOf(m.videos, m.requestedID))
		m.positioned = true
		return m, nil
	}
	if i := indexOf(m.videos, currentID); i >= 0 {
		m.index = i
	}
	m.clampIndex()
	return m, nil
}

// applySelected takes the targeted path when only the like state of the
// on-screen copy differs from the new selection.
func (m Model) applySelected(v domain.Video) Model {
	m.selected = v
	m.hasSelected = true

	i := indexOf(m.videos, v.ID)
	if i < 0 || !diff.LikeOnly(m.videos[i], v) {
		return m
	}
	if patched, ok := diff.Patch(m.videos, i, v); ok {
		m.videos = patched
		m.patches++
	}
	return m
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, m.keys.Down):
		if m.index < len(m.videos)-1 {
			m.index++
			return m, m.selectCurrent()
		}
	case key.Matches(msg, m.keys.Up):
		if m.index > 0 {
			m.index--
			return m, m.selectCurrent()
		}

	case key.Matches(msg, m.keys.Like):
		v, ok := m.Current()
		if !ok {
			break
		}
		if m.hasSelected && m.selected.ID == v.ID {
			v = m.selected
		}
		actions := m.actions
		return m, func() tea.Msg {
			actions.ToggleLike(context.Background(), v)
			return nil
		}

	case key.Matches(msg, m.keys.Comments):
		v, ok := m.Current()
		if !ok {
			break
		}
		return m, func() tea.Msg { return OpenCommentsMsg{Video: v} }

	case key.Matches(msg, m.keys.Refresh):
		actions := m.actions
		return m, func() tea.Msg {
			actions.LoadAll(context.Background())
			return nil
		}
	}
	return m, nil
}

func (m Model) selectCurrent() tea.Cmd {
	v, ok := m.Current()
	if !ok {
		return nil
	}
	actions := m.actions
	return func() tea.Msg {
		actions.SelectVideo(v)
		return nil
	}
}

func (m *Model) clampIndex() {
	if m.index >= len(m.videos) {
		m.index = len(m.videos) - 1
	}
	if m.index < 0 {
		m.index = 0
	}
}

func indexOf(videos []domain.Video, id string) int {
	if id == "" {
		return -1
	}
	for i, v := range videos {
		if v.ID == id {
			return i
		}
	}
	return -1
}
