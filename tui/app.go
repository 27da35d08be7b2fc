package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/infra/editor"
	"github.com/CrestNiraj12/terminalreels/store"
	"github.com/CrestNiraj12/terminalreels/tui/comments"
	"github.com/CrestNiraj12/terminalreels/tui/common"
	"github.com/CrestNiraj12/terminalreels/tui/feed"
	"github.com/CrestNiraj12/terminalreels/tui/player"
)

const statusTTL = 4 * time.Second

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Scope  *store.Scope
	Editor *editor.EnvEditor
	User   domain.User
	Log    logrus.FieldLogger
}

type activeView int

const (
	feedView activeView = iota
	playerView
)

// streams carries one watch channel per store slot.
type streams struct {
	feed     <-chan []domain.Video
	catalog  <-chan []domain.Video
	selected <-chan domain.Video
	comments <-chan []domain.Comment
	loading  <-chan bool
	errs     <-chan string
}

type clearStatusMsg struct {
	seq int
}

// App is the root Bubble Tea model. It routes between sub-views and feeds
// them store snapshots.
type App struct {
	deps      Deps
	store     *store.Store
	cancel    context.CancelFunc
	streams   streams
	active    activeView
	feed      feed.Model
	player    player.Model
	comments  comments.Model
	sheetOpen bool
	keys      common.KeyMap
	status    string // Transient status message (e.g. "Like failed: ...")
	statusSeq int
	width     int
	height    int
}

// NewApp enters the store scope and subscribes to every slot for the
// lifetime of ctx. Call Close when the program exits.
func NewApp(ctx context.Context, deps Deps) App {
	if deps.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		deps.Log = l
	}
	st := deps.Scope.Enter()
	ctx, cancel := context.WithCancel(ctx)

	return App{
		deps:   deps,
		store:  st,
		cancel: cancel,
		streams: streams{
			feed:     st.Feed().Watch(ctx),
			catalog:  st.Catalog().Watch(ctx),
			selected: st.Selected().Watch(ctx),
			comments: st.Comments().Watch(ctx),
			loading:  st.Loading().Watch(ctx),
			errs:     st.Err().Watch(ctx),
		},
		active: feedView,
		feed:   feed.New(st),
		keys:   common.DefaultKeyMap(),
	}
}

// Close stops the watchers and releases every scope reference the app holds.
func (a App) Close() {
	a.cancel()
	if a.active == playerView {
		a.deps.Scope.Leave()
	}
	a.deps.Scope.Leave()
}

// Init starts listening and delegates to the feed.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.listenFeed(),
		a.listenCatalog(),
		a.listenSelected(),
		a.listenComments(),
		a.listenLoading(),
		a.listenErrs(),
		a.feed.Init(),
	)
}

func (a App) listenFeed() tea.Cmd {
	return common.Listen(a.streams.feed, func(v []domain.Video) tea.Msg { return common.FeedMsg{Videos: v} })
}

func (a App) listenCatalog() tea.Cmd {
	return common.Listen(a.streams.catalog, func(v []domain.Video) tea.Msg { return common.CatalogMsg{Videos: v} })
}

func (a App) listenSelected() tea.Cmd {
	return common.Listen(a.streams.selected, func(v domain.Video) tea.Msg { return common.SelectedMsg{Video: v} })
}

func (a App) listenComments() tea.Cmd {
	return common.Listen(a.streams.comments, func(c []domain.Comment) tea.Msg { return common.CommentsMsg{Comments: c} })
}

func (a App) listenLoading() tea.Cmd {
	return common.Listen(a.streams.loading, func(b bool) tea.Msg { return common.LoadingMsg{Loading: b} })
}

func (a App) listenErrs() tea.Cmd {
	return common.Listen(a.streams.errs, func(s string) tea.Msg { return common.ErrMsg{Message: s} })
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.feed, _ = a.feed.Update(msg)
		a.player, _ = a.player.Update(msg)
		a.comments, _ = a.comments.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.active == feedView && key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}

	// --- Store snapshots ---

	case common.FeedMsg:
		a.feed, cmd = a.feed.Update(msg)
		return a, tea.Batch(cmd, a.listenFeed())

	case common.CatalogMsg:
		if a.active == playerView {
			a.player, cmd = a.player.Update(msg)
		}
		return a, tea.Batch(cmd, a.listenCatalog())

	case common.SelectedMsg:
		if a.active == playerView {
			a.player, _ = a.player.Update(msg)
		}
		if a.sheetOpen {
			a.comments, _ = a.comments.Update(msg)
		}
		return a, a.listenSelected()

	case common.CommentsMsg:
		if a.sheetOpen {
			a.comments, _ = a.comments.Update(msg)
		}
		return a, a.listenComments()

	case common.LoadingMsg:
		a.feed, _ = a.feed.Update(msg)
		return a, a.listenLoading()

	case common.ErrMsg:
		a.feed, _ = a.feed.Update(msg)
		if msg.Message == "" {
			return a, a.listenErrs()
		}
		a.status = msg.Message
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Batch(a.listenErrs(), tea.Tick(statusTTL, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		}))

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.status = ""
		}
		return a, nil

	// --- Navigation ---

	case feed.OpenPlayerMsg:
		a.deps.Scope.Enter()
		catalog, _ := a.store.Catalog().Get()
		a.player = player.New(a.store, msg.Video.ID, catalog)
		a.player, _ = a.player.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.active = playerView
		a.deps.Log.WithField("video_id", msg.Video.ID).Debug("player opened")
		return a, a.player.Init()

	case player.CloseMsg:
		a.active = feedView
		a.sheetOpen = false
		a.deps.Scope.Leave()
		return a, nil

	case player.OpenCommentsMsg:
		a.comments = comments.New(a.store, a.deps.Editor, msg.Video, a.deps.User)
		a.comments, _ = a.comments.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.sheetOpen = true
		return a, a.comments.Init()

	case comments.CloseMsg:
		a.sheetOpen = false
		return a, nil

	case spinner.TickMsg:
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch {
	case a.active == playerView && a.sheetOpen:
		a.comments, cmd = a.comments.Update(msg)
	case a.active == playerView:
		a.player, cmd = a.player.Update(msg)
	default:
		a.feed, cmd = a.feed.Update(msg)
	}
	return a, cmd
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case feedView:
		s = a.feed.View()
	case playerView:
		s = a.player.View()
		if a.sheetOpen {
			s += "\n" + a.comments.View()
		}
	}

	if a.status != "" {
		s += "\n" + common.ErrorStyle.Inherit(common.StatusBarStyle).Render(a.status)
	}
	return s
}
