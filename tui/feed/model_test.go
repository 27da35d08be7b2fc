package feed

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/tui/common"
)

type stubLoader struct {
	mu    sync.Mutex
	calls int
}

func (s *stubLoader) LoadFeed(context.Context) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
}

func makeVideo(id string, likes int) domain.Video {
	return domain.Video{
		ID:        id,
		Title:     "Title " + id,
		Author:    domain.User{ID: "u" + id, Username: "user" + id},
		LikeCount: likes,
		PlayCount: 15600,
		Duration:  45,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
}

func loadedModel(n int) Model {
	m := New(&stubLoader{})
	m.width = 80 // two columns
	m.height = 40
	videos := make([]domain.Video, n)
	for i := range videos {
		videos[i] = makeVideo(string(rune('a'+i)), 1200)
	}
	m, _ = m.Update(common.FeedMsg{Videos: videos})
	return m
}

func press(m Model, k tea.KeyMsg) (Model, tea.Cmd) {
	return m.Update(k)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFeedMsg_ReplacesVideosAndClampsCursor(t *testing.T) {
	m := loadedModel(6)
	m.cursor = 5

	m, _ = m.Update(common.FeedMsg{Videos: []domain.Video{makeVideo("x", 1)}})
	if len(m.Videos()) != 1 || m.Cursor() != 0 {
		t.Fatalf("unexpected state: videos=%d cursor=%d", len(m.Videos()), m.Cursor())
	}

	m, _ = m.Update(common.FeedMsg{})
	if m.Cursor() != 0 {
		t.Fatalf("cursor must stay at zero for empty feed, got %d", m.Cursor())
	}
	if _, ok := m.SelectedVideo(); ok {
		t.Fatalf("empty feed has no selection")
	}
}

func TestGridNavigation(t *testing.T) {
	m := loadedModel(5)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 2 {
		t.Fatalf("down should move one row, got %d", m.Cursor())
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Cursor() != 3 {
		t.Fatalf("right should move one card, got %d", m.Cursor())
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Cursor() != 3 {
		t.Fatalf("down past the last card must be ignored, got %d", m.Cursor())
	}
	m, _ = press(m, runes("k"))
	if m.Cursor() != 1 {
		t.Fatalf("k should move up one row, got %d", m.Cursor())
	}
	m, _ = press(m, runes("h"))
	m, _ = press(m, runes("h"))
	if m.Cursor() != 0 {
		t.Fatalf("left must stop at zero, got %d", m.Cursor())
	}
}

func TestOpen_EmitsOpenPlayer(t *testing.T) {
	m := loadedModel(3)
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected open command")
	}
	msg, ok := cmd().(OpenPlayerMsg)
	if !ok || msg.Video.ID != "b" {
		t.Fatalf("unexpected message: %#v", msg)
	}

	empty := New(&stubLoader{})
	if _, cmd := press(empty, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("enter on empty feed must be a no-op")
	}
}

func TestRefresh_CallsLoader(t *testing.T) {
	loader := &stubLoader{}
	m := New(loader)

	m, cmd := press(m, runes("r"))
	if !m.Loading() || cmd == nil {
		t.Fatalf("refresh should set loading and return a command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("refresh command yields no message, got %#v", msg)
	}
	if loader.calls != 1 {
		t.Fatalf("expected one LoadFeed call, got %d", loader.calls)
	}
}

func TestView_States(t *testing.T) {
	m := New(&stubLoader{})
	m, _ = m.Update(common.LoadingMsg{Loading: true})
	if !strings.Contains(m.View(), "Loading videos") {
		t.Fatalf("expected loading line")
	}

	m, _ = m.Update(common.LoadingMsg{Loading: false})
	m, _ = m.Update(common.ErrMsg{Message: "Load videos failed: boom"})
	view := m.View()
	if !strings.Contains(view, "Load videos failed: boom") || !strings.Contains(view, "Press r to retry") {
		t.Fatalf("expected error with retry hint, got %q", view)
	}

	m = loadedModel(2)
	view = m.View()
	if !strings.Contains(view, "Title a") || !strings.Contains(view, "1k") || !strings.Contains(view, "1w") {
		t.Fatalf("expected card content, got %q", view)
	}
}

func TestView_LikeMarkerFollowsSnapshot(t *testing.T) {
	m := loadedModel(1)
	if strings.Contains(m.View(), "♥") {
		t.Fatalf("unliked video must not show filled heart")
	}
	liked := m.Videos()[0].WithLikeToggled()
	m, _ = m.Update(common.FeedMsg{Videos: []domain.Video{liked}})
	if !strings.Contains(m.View(), "♥") {
		t.Fatalf("liked video must show filled heart")
	}
}
