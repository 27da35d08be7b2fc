package feed

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/tui/common"
)

const (
	cardWidth  = 34 // inner width, border and padding excluded
	cardHeight = 6  // rendered lines including the border
)

func (m Model) columns() int {
	cols := m.width / (cardWidth + 4)
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m Model) visibleRows() int {
	// header (4) + footer (3)
	rows := (m.height - 7) / cardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func likeMarker(liked bool) string {
	if liked {
		return common.LikeActiveStyle.Render("♥")
	}
	return common.MetadataStyle.Render("♡")
}

func (m Model) renderCard(v domain.Video, selected bool) string {
	var b strings.Builder
	b.WriteString(common.TitleStyle.Render(common.Truncate(v.Title, cardWidth)) + "\n")
	b.WriteString(common.ContentStyle.Render(common.Truncate(v.Description, cardWidth)) + "\n")

	author := common.AuthorStyle.Render("@" + common.Truncate(v.Author.Username, cardWidth/2))
	age := common.TimestampStyle.Render(common.RelativeTime(v.CreatedAt, m.now()))
	b.WriteString(author + "  " + age + "\n")

	meta := fmt.Sprintf("%s %s  ▶ %s  %s",
		likeMarker(v.IsLiked),
		common.FormatCount(v.LikeCount),
		common.FormatCount(v.PlayCount),
		common.FormatDuration(v.Duration))
	b.WriteString(common.MetadataStyle.Render(meta))

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}
	return style.Width(cardWidth + 2).Render(b.String())
}
