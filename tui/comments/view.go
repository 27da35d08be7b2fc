package comments

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/terminalreels/tui/common"
)

const visibleComments = 5

// View renders the sheet.
func (m Model) View() string {
	width := max(m.width-4, 20)
	var b strings.Builder

	header := fmt.Sprintf("Comments (%s) · %s",
		common.FormatCount(m.video.CommentCount),
		common.Truncate(m.video.Title, width/2))
	b.WriteString(common.TitleStyle.Render(header) + "\n\n")

	switch {
	case !m.loaded:
		b.WriteString(common.MetadataStyle.Render("Loading comments...") + "\n")
	case len(m.comments) == 0:
		b.WriteString(common.MetadataStyle.Render("No comments yet. Press i to add one.") + "\n")
	default:
		start := 0
		if m.cursor >= visibleComments {
			start = m.cursor - visibleComments + 1
		}
		end := min(start+visibleComments, len(m.comments))
		for i := start; i < end; i++ {
			b.WriteString(m.renderComment(i, width) + "\n")
		}
	}

	b.WriteString("\n")
	if m.typing {
		b.WriteString(m.input.View() + "\n")
		b.WriteString(common.MetadataStyle.Render(fmt.Sprintf("enter: send • esc: cancel • %d/%d chars",
			len(m.input.Value()), maxCommentLen)))
	} else {
		if m.status != "" {
			b.WriteString(common.MetadataStyle.Render(m.status) + "\n")
		}
		b.WriteString(common.MetadataStyle.Render(common.HelpLine(
			m.keys.Up, m.keys.Down, m.keys.Like, m.keys.Inline, m.keys.Open, m.keys.Editor, m.keys.Back,
		)))
	}

	return common.SheetStyle.Width(width).Render(b.String())
}

func (m Model) renderComment(i, width int) string {
	c := m.comments[i]
	marker := "  "
	if i == m.cursor {
		marker = common.LikeActiveStyle.Render("› ")
	}
	heart := common.MetadataStyle.Render("♡")
	if c.IsLiked {
		heart = common.LikeActiveStyle.Render("♥")
	}
	head := common.AuthorStyle.Render("@"+c.User.Username) + "  " +
		common.TimestampStyle.Render(common.RelativeTime(c.CreatedAt, m.now())) + "  " +
		heart + " " + common.MetadataStyle.Render(common.FormatCount(c.LikeCount))
	body := common.ContentStyle.Render(common.Truncate(c.Content, width-4))
	return marker + head + "\n  " + body
}
