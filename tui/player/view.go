package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalreels/tui/common"
)

// View renders the video on screen.
func (m Model) View() string {
	v, ok := m.Current()
	if !ok {
		return common.StatusBarStyle.Render("  Loading catalog...") + "\n"
	}

	width := max(m.width-6, 20)
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Padding(1, 0, 0, 1).Render("▶ TerminalReels"))
	b.WriteString(common.TaglineStyle.Render(fmt.Sprintf("%d/%d", m.index+1, len(m.videos))) + "\n\n")

	var card strings.Builder
	card.WriteString(common.TitleStyle.Render(v.Title) + "\n")
	card.WriteString(common.AuthorStyle.Render("@"+v.Author.Username) + "  " +
		common.MetadataStyle.Render(common.FormatCount(v.Author.FollowersCount)+" followers") + "\n")
	card.WriteString(common.TimestampStyle.Render(common.RelativeTime(v.CreatedAt, m.now())+" • "+common.FormatDuration(v.Duration)) + "\n\n")
	card.WriteString(common.ContentStyle.Width(width-4).Render(v.Description) + "\n\n")

	heart := common.MetadataStyle.Render("♡")
	if v.IsLiked {
		heart = common.LikeActiveStyle.Render("♥")
	}
	card.WriteString(common.MetadataStyle.Render(fmt.Sprintf("%s %s   💬 %s   ↗ %s   ▶ %s",
		heart,
		common.FormatCount(v.LikeCount),
		common.FormatCount(v.CommentCount),
		common.FormatCount(v.ShareCount),
		common.FormatCount(v.PlayCount))))

	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(
		common.SelectedStyle.Width(width).Render(card.String())))
	b.WriteString("\n")
	b.WriteString(common.StatusBarStyle.Render("  " + common.HelpLine(
		m.keys.Up, m.keys.Down, m.keys.Like, m.keys.Comments, m.keys.Refresh, m.keys.Back,
	)))
	return common.ClampLinesToWidth(b.String(), m.width)
}
