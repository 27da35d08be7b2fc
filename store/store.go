// Package store holds the view state shared by every screen: the full
// catalog, the feed subset, the selected video, the active comment list, a
// loading flag and an error message. Each lives in its own Slot.
//
// Mutations copy, never modify: a changed entity is a new value substituted
// at its index, and each of the three video views is patched independently
// by id. A source failure publishes a message to the error slot and leaves
// the other snapshots as they were; nothing is returned to the caller.
//
// Fetches run outside the store's lock, so concurrent loads may race. The
// last one to finish wins each slot.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/CrestNiraj12/terminalreels/app"
	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/infra/logging"
)

// Store owns the authoritative snapshots.
type Store struct {
	source    app.CatalogService
	log       logrus.FieldLogger
	feedLimit int

	mu       sync.Mutex // serializes read-modify-publish
	inflight int
	closed   bool

	catalog  Slot[[]domain.Video]
	feed     Slot[[]domain.Video]
	selected Slot[domain.Video]
	comments Slot[[]domain.Comment]
	loading  Slot[bool]
	errMsg   Slot[string]
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) { s.log = l }
}

// WithFeedLimit caps the feed subset to the first n catalog entries. Zero
// means the whole catalog.
func WithFeedLimit(n int) Option {
	return func(s *Store) { s.feedLimit = n }
}

// New creates a store backed by source.
func New(source app.CatalogService, opts ...Option) *Store {
	s := &Store{source: source}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	return s
}

// Catalog is the full catalog used for sequential playback.
func (s *Store) Catalog() *Slot[[]domain.Video] { return &s.catalog }

// Feed is the subset shown in the grid.
func (s *Store) Feed() *Slot[[]domain.Video] { return &s.feed }

// Selected is the video currently in focus. Unset until something selects one.
func (s *Store) Selected() *Slot[domain.Video] { return &s.selected }

// Comments is the comment list for the active video, newest first.
func (s *Store) Comments() *Slot[[]domain.Comment] { return &s.comments }

// Loading is true while a feed load is in flight.
func (s *Store) Loading() *Slot[bool] { return &s.loading }

// Err carries a human-readable message for the last failure. Empty means no error.
func (s *Store) Err() *Slot[string] { return &s.errMsg }

// Close ends every subscription. Later mutations are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.catalog.close()
	s.feed.close()
	s.selected.close()
	s.comments.close()
	s.loading.close()
	s.errMsg.close()
}

// LoadFeed fetches the catalog and publishes it to both the feed subset and
// the full catalog.
func (s *Store) LoadFeed(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.inflight++
	s.loading.Publish(true)
	s.mu.Unlock()

	videos, err := s.source.ListCatalog(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if s.closed {
		return
	}
	if err != nil {
		s.fail("load videos", err)
	} else {
		s.feed.Publish(s.subset(videos))
		s.catalog.Publish(videos)
		s.errMsg.Publish("")
		s.log.WithField("count", len(videos)).Debug("feed loaded")
	}
	s.loading.Publish(s.inflight > 0)
}

// LoadAll refreshes only the full catalog, leaving the feed subset alone.
func (s *Store) LoadAll(ctx context.Context) {
	videos, err := s.source.ListCatalog(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err != nil {
		s.fail("load videos", err)
		return
	}
	s.catalog.Publish(videos)
	s.errMsg.Publish("")
}

// SelectVideoByID fetches a video and makes it the selection. An unknown id
// leaves the selection unchanged.
func (s *Store) SelectVideoByID(ctx context.Context, id string) {
	v, err := s.source.VideoByID(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WithField("video_id", id).Debug("select: video not found")
		return
	}
	if err != nil {
		s.fail("load video", err)
		return
	}
	s.selected.Publish(v)
}

// SelectVideo publishes v as the selection without fetching.
func (s *Store) SelectVideo(v domain.Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.selected.Publish(v)
}

// LoadComments fetches the comment list for videoID.
func (s *Store) LoadComments(ctx context.Context, videoID string) {
	comments, err := s.source.Comments(ctx, videoID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err != nil {
		s.fail("load comments", err)
		return
	}
	s.comments.Publish(comments)
	s.errMsg.Publish("")
}

// ToggleLike flips the like state of video optimistically across the
// selection, the catalog and the feed. If the source rejects it, only the
// like is undone on whatever each slot holds by then, so changes made while
// the request was pending survive.
func (s *Store) ToggleLike(ctx context.Context, video domain.Video) {
	updated := video.WithLikeToggled()
	log := s.log.WithFields(logrus.Fields{"video_id": video.ID, "liked": updated.IsLiked})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.selected.Publish(updated)
	s.patchVideos(video.ID, func(domain.Video) domain.Video { return updated })
	s.mu.Unlock()
	log.Debug("like toggled")

	ok, err := s.source.ToggleLike(ctx, video.ID)
	if err == nil && !ok {
		err = domain.ErrRejected
	}
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	undo := func(cur domain.Video) domain.Video {
		if cur.IsLiked == updated.IsLiked {
			return cur.WithLikeToggled()
		}
		return cur
	}
	if cur, set := s.selected.Get(); set && cur.ID == video.ID {
		s.selected.Publish(undo(cur))
	}
	s.patchVideos(video.ID, undo)
	log.Debug("like rolled back")
	s.fail("like", err)
}

// SubmitComment posts a comment and bumps the video's comment count.
// Content that is blank after trimming is ignored.
func (s *Store) SubmitComment(ctx context.Context, videoID, content string, author domain.User) {
	content = strings.TrimSpace(content)
	if content == "" {
		s.log.WithField("video_id", videoID).Debug("comment: empty content ignored")
		return
	}

	c, err := s.source.CreateComment(ctx, videoID, content, author)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if err != nil {
		s.fail("post comment", err)
		return
	}

	current, _ := s.comments.Get()
	next := make([]domain.Comment, 0, len(current)+1)
	next = append(next, c)
	next = append(next, current...)
	s.comments.Publish(next)

	if cur, set := s.selected.Get(); set && cur.ID == videoID {
		s.selected.Publish(cur.WithCommentAdded())
	}
	s.patchVideos(videoID, domain.Video.WithCommentAdded)
	s.errMsg.Publish("")
	s.log.WithFields(logrus.Fields{"video_id": videoID, "comment_id": c.ID}).Debug("comment added")
}

// ToggleCommentLike flips the like state of comment within the comment list.
// Video aggregates are untouched.
func (s *Store) ToggleCommentLike(ctx context.Context, comment domain.Comment) {
	updated := comment.WithLikeToggled()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.patchComments(comment.ID, func(domain.Comment) domain.Comment { return updated })
	s.mu.Unlock()

	ok, err := s.source.ToggleCommentLike(ctx, comment.ID)
	if err == nil && !ok {
		err = domain.ErrRejected
	}
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.patchComments(comment.ID, func(cur domain.Comment) domain.Comment {
		if cur.IsLiked == updated.IsLiked {
			return cur.WithLikeToggled()
		}
		return cur
	})
	s.fail("like comment", err)
}

// patchVideos applies fn to the element with id in the catalog and in the
// feed, each independently. Lists without the id are left alone.
func (s *Store) patchVideos(id string, fn func(domain.Video) domain.Video) {
	for _, slot := range []*Slot[[]domain.Video]{&s.catalog, &s.feed} {
		items, _ := slot.Get()
		if next, ok := replaceByID(items, id, videoKey, fn); ok {
			slot.Publish(next)
		}
	}
}

func (s *Store) patchComments(id string, fn func(domain.Comment) domain.Comment) {
	items, _ := s.comments.Get()
	next, ok := replaceByID(items, id, commentKey, fn)
	if ok {
		s.comments.Publish(next)
	}
}

func (s *Store) subset(videos []domain.Video) []domain.Video {
	if s.feedLimit <= 0 || s.feedLimit >= len(videos) {
		return videos
	}
	return videos[:s.feedLimit:s.feedLimit]
}

// fail converts err into an error-slot message. Cancellation means the
// caller went away, so it is only logged.
func (s *Store) fail(op string, err error) {
	if errors.Is(err, context.Canceled) {
		s.log.WithError(err).Debugf("%s cancelled", op)
		return
	}
	s.log.WithError(err).Warnf("%s failed", op)
	s.errMsg.Publish(fmt.Sprintf("%s failed: %v", capitalize(op), err))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
