// Package player is the immersive one-video-at-a-time view over the full
// catalog. Its list is kept in step with catalog snapshots through diff
// scripts, and like-only changes to the selection take the targeted patch.
package player

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/diff"
	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/tui/common"
)

// Actions is the part of the store the player drives.
type Actions interface {
	SelectVideo(v domain.Video)
	SelectVideoByID(ctx context.Context, id string)
	ToggleLike(ctx context.Context, v domain.Video)
	LoadAll(ctx context.Context)
}

// CloseMsg asks the root to return to the grid.
type CloseMsg struct{}

// OpenCommentsMsg asks the root to open the comment sheet for Video.
type OpenCommentsMsg struct {
	Video domain.Video
}

// Model holds the state for the player view.
type Model struct {
	actions     Actions
	videos      []domain.Video
	index       int
	requestedID string
	positioned  bool
	selected    domain.Video
	hasSelected bool
	lastScript  diff.Script[domain.Video]
	patches     int
	keys        common.KeyMap
	width       int
	height      int
	now         func() time.Time
}

// New creates a player that starts on the video with id requestedID once the
// catalog arrives. catalog may be the last known snapshot or nil.
func New(actions Actions, requestedID string, catalog []domain.Video) Model {
	m := Model{
		actions:     actions,
		requestedID: requestedID,
		keys:        common.DefaultKeyMap(),
		width:       80,
		height:      24,
		now:         time.Now,
	}
	if len(catalog) > 0 {
		m, _ = m.applyCatalog(catalog)
	}
	return m
}

// Init reloads the catalog and selects the requested video.
func (m Model) Init() tea.Cmd {
	actions, id := m.actions, m.requestedID
	return func() tea.Msg {
		ctx := context.Background()
		actions.LoadAll(ctx)
		actions.SelectVideoByID(ctx, id)
		return nil
	}
}

// Videos returns the rendered list.
func (m Model) Videos() []domain.Video {
	return m.videos
}

// Index returns the position of the video on screen.
func (m Model) Index() int {
	return m.index
}

// Current returns the video on screen, if any.
func (m Model) Current() (domain.Video, bool) {
	if len(m.videos) == 0 {
		return domain.Video{}, false
	}
	return m.videos[m.index], true
}

// LastScript returns the edit script applied by the latest catalog snapshot.
func (m Model) LastScript() diff.Script[domain.Video] {
	return m.lastScript
}

// Patches counts selection updates applied through the targeted path.
func (m Model) Patches() int {
	return m.patches
}
