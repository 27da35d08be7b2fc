package comments

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/tui/common"
)

const maxCommentLen = 500

// --- Dependencies ---

// Actions is the part of the store the sheet drives.
type Actions interface {
	LoadComments(ctx context.Context, videoID string)
	SubmitComment(ctx context.Context, videoID, content string, author domain.User)
	ToggleCommentLike(ctx context.Context, c domain.Comment)
}

// Composer prepares an external editor session.
type Composer interface {
	Cmd(videoTitle, draft string) (*exec.Cmd, string, error)
	ReadContent(path string) (string, error)
}

// --- Messages ---

// CloseMsg asks the root to close the sheet.
type CloseMsg struct{}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the comment sheet of one video.
type Model struct {
	actions  Actions
	composer Composer
	author   domain.User
	video    domain.Video
	comments []domain.Comment
	loaded   bool
	cursor   int
	input    textinput.Model
	typing   bool
	status   string
	keys     common.KeyMap
	width    int
	now      func() time.Time
}

// New creates a sheet for video. Comments posted from it are attributed to author.
func New(actions Actions, composer Composer, video domain.Video, author domain.User) Model {
	ti := textinput.New()
	ti.Placeholder = "Say something nice..."
	ti.CharLimit = maxCommentLen
	ti.Width = 60

	return Model{
		actions:  actions,
		composer: composer,
		author:   author,
		video:    video,
		input:    ti,
		keys:     common.DefaultKeyMap(),
		width:    80,
		now:      time.Now,
	}
}

// Init loads the comment list.
func (m Model) Init() tea.Cmd {
	actions, id := m.actions, m.video.ID
	return func() tea.Msg {
		actions.LoadComments(context.Background(), id)
		return nil
	}
}

// VideoID returns the id of the video the sheet belongs to.
func (m Model) VideoID() string {
	return m.video.ID
}

// Comments returns the rendered list.
func (m Model) Comments() []domain.Comment {
	return m.comments
}

// Typing reports whether the inline input has focus.
func (m Model) Typing() bool {
	return m.typing
}

// Update handles messages for the sheet.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-12, 20)
		return m, nil

	case common.CommentsMsg:
		own, ok := m.ownComments(msg.Comments)
		if !ok {
			return m, nil
		}
		m.comments = own
		m.loaded = true
		m.clampCursor()
		return m, nil

	case common.SelectedMsg:
		if msg.Video.ID == m.video.ID {
			m.video = msg.Video
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.status = "Editor: " + msg.err.Error()
			return m, nil
		}
		content, err := m.composer.ReadContent(msg.tmpPath)
		if err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		if content == "" {
			m.status = "Cancelled."
			return m, nil
		}
		m.status = ""
		return m, m.submit(content)

	case tea.KeyMsg:
		if m.typing {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.typing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.typing = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		content := m.input.Value()
		m.input.Reset()
		m.input.Blur()
		m.typing = false
		return m, m.submit(content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.comments)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Like):
		if len(m.comments) == 0 {
			break
		}
		c := m.comments[m.cursor]
		actions := m.actions
		return m, func() tea.Msg {
			actions.ToggleCommentLike(context.Background(), c)
			return nil
		}

	case key.Matches(msg, m.keys.Inline):
		return m.startTyping("")

	case key.Matches(msg, m.keys.Open):
		if len(m.comments) == 0 {
			return m.startTyping("")
		}
		return m.startTyping("@" + m.comments[m.cursor].User.Username + " ")

	case key.Matches(msg, m.keys.Editor):
		m.status = "Opening editor..."
		return m, m.launchEditor()
	}
	return m, nil
}

func (m Model) startTyping(prefill string) (Model, tea.Cmd) {
	m.typing = true
	m.status = ""
	m.input.SetValue(prefill)
	m.input.CursorEnd()
	focus := m.input.Focus()
	return m, tea.Batch(focus, textinput.Blink)
}

// launchEditor hands the terminal to $EDITOR via tea.ExecProcess.
func (m Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.composer.Cmd(m.video.Title, "")
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

func (m Model) submit(content string) tea.Cmd {
	actions, id, author := m.actions, m.video.ID, m.author
	return func() tea.Msg {
		actions.SubmitComment(context.Background(), id, strings.TrimSpace(content), author)
		return nil
	}
}

// ownComments keeps the entries of list that belong to this sheet's video.
// The comment slot is shared by every video, so a list holding none of them
// is another video's and is rejected. An empty list carries no video id; it
// is only taken before the first load, since a loaded list never shrinks.
func (m Model) ownComments(list []domain.Comment) ([]domain.Comment, bool) {
	if len(list) == 0 {
		return nil, !m.loaded
	}
	own := make([]domain.Comment, 0, len(list))
	for _, c := range list {
		if c.VideoID == m.video.ID {
			own = append(own, c)
		}
	}
	if len(own) == 0 {
		return nil, false
	}
	return own, true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.comments) {
		m.cursor = len(m.comments) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
