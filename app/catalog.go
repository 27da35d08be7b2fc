package app

import (
	"context"

	"github.com/CrestNiraj12/terminalreels/domain"
)

// CatalogService reads videos and comments and records viewer interactions.
// The bundled implementation is an in-memory mock; a network backend can
// replace it without changing callers.
type CatalogService interface {
	// ListCatalog returns the full catalog in a stable order.
	ListCatalog(ctx context.Context) ([]domain.Video, error)

	// VideoByID returns a single video or domain.ErrNotFound.
	VideoByID(ctx context.Context, id string) (domain.Video, error)

	// Comments returns the comments attached to a video, newest first.
	Comments(ctx context.Context, videoID string) ([]domain.Comment, error)

	// CreateComment builds a new comment authored by the given user.
	CreateComment(ctx context.Context, videoID, content string, author domain.User) (domain.Comment, error)

	// ToggleLike records a like flip for a video. It reports whether the
	// backend accepted it.
	ToggleLike(ctx context.Context, videoID string) (bool, error)

	// ToggleCommentLike records a like flip for a comment.
	ToggleCommentLike(ctx context.Context, commentID string) (bool, error)
}
