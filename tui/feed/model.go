package feed

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/tui/common"
)

// Loader fetches the feed. Results arrive as snapshot messages.
type Loader interface {
	LoadFeed(ctx context.Context)
}

// OpenPlayerMsg asks the root to open the player on Video.
type OpenPlayerMsg struct {
	Video domain.Video
}

// Model holds the state for the feed grid.
type Model struct {
	loader    Loader
	videos    []domain.Video
	cursor    int
	loading   bool
	errMsg    string
	keys      common.KeyMap
	spinner   spinner.Model
	width     int
	height    int
	showHints bool
	now       func() time.Time
}

// New creates a feed model with injected dependencies.
func New(loader Loader) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FE2C55"))

	return Model{
		loader:  loader,
		keys:    common.DefaultKeyMap(),
		spinner: s,
		width:   80,
		height:  24,
		now:     time.Now,
	}
}

// Init starts the initial feed fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Refresh(),
		m.spinner.Tick,
	)
}

// Refresh returns a Cmd that reloads the feed.
func (m Model) Refresh() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		loader.LoadFeed(context.Background())
		return nil
	}
}

// Update handles messages for the feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// Videos returns the grid contents.
func (m Model) Videos() []domain.Video {
	return m.videos
}

// Loading returns whether a load is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Cursor returns the focused card index.
func (m Model) Cursor() int {
	return m.cursor
}

// SelectedVideo returns the focused video, if any.
func (m Model) SelectedVideo() (domain.Video, bool) {
	if len(m.videos) == 0 {
		return domain.Video{}, false
	}
	return m.videos[m.cursor], true
}
