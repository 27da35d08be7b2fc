package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalreels/tui/common"
)

// View renders the feed grid as a string.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Padding(1, 0, 0, 1).Render("▶ TerminalReels")
	tagline := common.TaglineStyle.Render("<short videos, long terminals>")
	b.WriteString(title + tagline + "\n\n")

	switch {
	case m.loading && len(m.videos) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading videos...\n", m.spinner.View()))
	case m.errMsg != "" && len(m.videos) == 0:
		b.WriteString(common.ErrorStyle.Render("  " + m.errMsg))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.videos) == 0:
		b.WriteString("  No videos yet.\n")
	default:
		b.WriteString(m.renderGrid())
		b.WriteString("\n")
	}

	if m.loading && len(m.videos) > 0 {
		b.WriteString(fmt.Sprintf("  %s Refreshing...\n", m.spinner.View()))
	}
	b.WriteString(m.helpView())

	return common.ClampLinesToWidth(b.String(), m.width)
}

func (m Model) renderGrid() string {
	cols := m.columns()
	rows := m.visibleRows()
	cursorRow := m.cursor / cols
	startRow := 0
	if cursorRow >= rows {
		startRow = cursorRow - rows + 1
	}

	var lines []string
	for r := startRow; r < startRow+rows; r++ {
		var cards []string
		for c := range cols {
			i := r*cols + c
			if i >= len(m.videos) {
				break
			}
			cards = append(cards, m.renderCard(m.videos[i], i == m.cursor))
		}
		if len(cards) == 0 {
			break
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.NewStyle().MarginLeft(1).Render(strings.Join(lines, "\n"))
}

func (m Model) helpView() string {
	if !m.showHints {
		return common.StatusBarStyle.Render("  ?: hints • q: quit")
	}
	return common.StatusBarStyle.Render("  " + common.HelpLine(
		m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right,
		m.keys.Open, m.keys.Refresh, m.keys.Quit,
	))
}
