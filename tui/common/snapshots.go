package common

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/terminalreels/domain"
)

// Store snapshots delivered to the models. Each carries one published value
// of the matching slot.
type (
	FeedMsg     struct{ Videos []domain.Video }
	CatalogMsg  struct{ Videos []domain.Video }
	SelectedMsg struct{ Video domain.Video }
	CommentsMsg struct{ Comments []domain.Comment }
	LoadingMsg  struct{ Loading bool }
	ErrMsg      struct{ Message string }
)

// Listen waits for the next value on ch. It yields nil once ch is closed, so
// the caller stops re-issuing it.
func Listen[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return nil
		}
		return wrap(v)
	}
}
