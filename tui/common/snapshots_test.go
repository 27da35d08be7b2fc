package common

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/domain"
)

func TestListen(t *testing.T) {
	ch := make(chan bool, 1)
	ch <- true
	cmd := Listen(ch, func(b bool) tea.Msg { return LoadingMsg{Loading: b} })
	msg, ok := cmd().(LoadingMsg)
	if !ok || !msg.Loading {
		t.Fatalf("unexpected message: %#v", msg)
	}

	close(ch)
	if got := cmd(); got != nil {
		t.Fatalf("closed channel must yield nil, got %#v", got)
	}
	if Listen[domain.Video](nil, nil) != nil {
		t.Fatalf("nil channel must yield nil cmd")
	}
}
