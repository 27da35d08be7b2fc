// Package mock provides an in-memory, deterministic catalog that satisfies
// app.CatalogService. Every read regenerates the fixture, so callers never
// share backing arrays with the source.
package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CrestNiraj12/terminalreels/domain"
)

// Catalog is the mock data source.
type Catalog struct {
	now     func() time.Time
	newID   func() string
	latency time.Duration

	mu       sync.Mutex
	failNext error
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithClock overrides the time source used for createdAt values.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// WithIDGenerator overrides the comment id generator.
func WithIDGenerator(gen func() string) Option {
	return func(c *Catalog) { c.newID = gen }
}

// WithLatency delays every call, simulating a slow backend.
func WithLatency(d time.Duration) Option {
	return func(c *Catalog) { c.latency = d }
}

// New creates a mock catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		now:   time.Now,
		newID: func() string { return "comment_" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FailNext makes the next call return err. Used to exercise failure paths.
func (c *Catalog) FailNext(err error) {
	c.mu.Lock()
	c.failNext = err
	c.mu.Unlock()
}

func (c *Catalog) begin(ctx context.Context) error {
	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	err := c.failNext
	c.failNext = nil
	return err
}

// ListCatalog returns the fixed catalog, same order every call.
func (c *Catalog) ListCatalog(ctx context.Context) ([]domain.Video, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}
	return c.videos(), nil
}

// VideoByID returns the video with the given id or domain.ErrNotFound.
func (c *Catalog) VideoByID(ctx context.Context, id string) (domain.Video, error) {
	if err := c.begin(ctx); err != nil {
		return domain.Video{}, err
	}
	for _, v := range c.videos() {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Video{}, fmt.Errorf("video %q: %w", id, domain.ErrNotFound)
}

// Comments returns the synthetic comment set tagged with videoID. The id does
// not have to exist in the catalog.
func (c *Catalog) Comments(ctx context.Context, videoID string) ([]domain.Comment, error) {
	if err := c.begin(ctx); err != nil {
		return nil, err
	}
	now := c.now()
	users := fixtureUsers()
	return []domain.Comment{
		{
			ID:        "comment_1",
			VideoID:   videoID,
			User:      users[0],
			Content:   "Loved this one, learned a lot. Thanks for sharing!",
			LikeCount: 23,
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			ID:        "comment_2",
			VideoID:   videoID,
			User:      users[1],
			Content:   "Super clear, even a beginner can follow. Saved!",
			LikeCount: 15,
			CreatedAt: now.Add(-1 * time.Hour),
			IsLiked:   true,
		},
		{
			ID:        "comment_3",
			VideoID:   videoID,
			User:      users[2],
			Content:   "Is there a step-by-step version? Want to try it too!",
			LikeCount: 8,
			CreatedAt: now.Add(-2 * time.Hour),
		},
	}, nil
}

// CreateComment builds a new comment with a fresh id and zero likes.
func (c *Catalog) CreateComment(ctx context.Context, videoID, content string, author domain.User) (domain.Comment, error) {
	if err := c.begin(ctx); err != nil {
		return domain.Comment{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}
	return domain.Comment{
		ID:        c.newID(),
		VideoID:   videoID,
		User:      author,
		Content:   content,
		CreatedAt: c.now(),
	}, nil
}

// ToggleLike always accepts. A real backend call belongs here.
func (c *Catalog) ToggleLike(ctx context.Context, videoID string) (bool, error) {
	if err := c.begin(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleCommentLike always accepts.
func (c *Catalog) ToggleCommentLike(ctx context.Context, commentID string) (bool, error) {
	if err := c.begin(ctx); err != nil {
		return false, err
	}
	return true, nil
}
