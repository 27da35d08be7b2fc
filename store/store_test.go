package store

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/terminalreels/domain"
	"github.com/CrestNiraj12/terminalreels/infra/mock"
)

var me = domain.User{ID: "me", Username: "tester"}

func newTestStore(t *testing.T, opts ...Option) (*Store, *mock.Catalog) {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	src := mock.New(mock.WithClock(func() time.Time { return now }))
	s := New(src, opts...)
	t.Cleanup(s.Close)
	return s, src
}

func loaded(t *testing.T, opts ...Option) (*Store, *mock.Catalog) {
	t.Helper()
	s, src := newTestStore(t, opts...)
	s.LoadFeed(context.Background())
	return s, src
}

func mustGet[T any](t *testing.T, slot *Slot[T]) T {
	t.Helper()
	v, ok := slot.Get()
	require.True(t, ok, "slot has not been published")
	return v
}

func find(t *testing.T, videos []domain.Video, id string) domain.Video {
	t.Helper()
	for _, v := range videos {
		if v.ID == id {
			return v
		}
	}
	t.Fatalf("video %s not in list", id)
	return domain.Video{}
}

func TestNew_DefaultLoggerDiscards(t *testing.T) {
	s := New(mock.New())
	t.Cleanup(s.Close)

	l, ok := s.log.(*logrus.Logger)
	require.True(t, ok)
	assert.Equal(t, io.Discard, l.Out)
}

func TestLoadFeed_PublishesFeedAndCatalog(t *testing.T) {
	s, _ := loaded(t)

	feed := mustGet(t, s.Feed())
	catalog := mustGet(t, s.Catalog())
	require.Len(t, catalog, 6)
	assert.Equal(t, catalog, feed)
	assert.Equal(t, "video_1", catalog[0].ID)
	assert.False(t, mustGet(t, s.Loading()))
	assert.Empty(t, mustGet(t, s.Err()))
}

func TestLoadFeed_FeedLimit(t *testing.T) {
	s, _ := loaded(t, WithFeedLimit(4))
	assert.Len(t, mustGet(t, s.Feed()), 4)
	assert.Len(t, mustGet(t, s.Catalog()), 6)
}

func TestLoadFeed_LoadingSequence(t *testing.T) {
	s, _ := newTestStore(t)
	var states []bool
	unsubscribe := s.Loading().Subscribe(func(b bool) { states = append(states, b) })
	defer unsubscribe()

	s.LoadFeed(context.Background())
	assert.Equal(t, []bool{true, false}, states)
}

func TestLoadFeed_FailureKeepsPreviousData(t *testing.T) {
	s, src := loaded(t)
	before := mustGet(t, s.Feed())

	src.FailNext(errors.New("boom"))
	s.LoadFeed(context.Background())

	assert.Equal(t, before, mustGet(t, s.Feed()))
	assert.Equal(t, "Load videos failed: boom", mustGet(t, s.Err()))
	assert.False(t, mustGet(t, s.Loading()))
}

func TestLoadFeed_CancelledIsSilent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.LoadFeed(ctx)
	_, ok := s.Err().Get()
	assert.False(t, ok)
	_, ok = s.Feed().Get()
	assert.False(t, ok)
	assert.False(t, mustGet(t, s.Loading()))
}

func TestLoadAll_LeavesFeedAlone(t *testing.T) {
	s, _ := newTestStore(t, WithFeedLimit(2))
	s.LoadAll(context.Background())

	assert.Len(t, mustGet(t, s.Catalog()), 6)
	_, ok := s.Feed().Get()
	assert.False(t, ok)
}

func TestSelectVideoByID(t *testing.T) {
	s, _ := newTestStore(t)

	s.SelectVideoByID(context.Background(), "video_3")
	assert.Equal(t, "video_3", mustGet(t, s.Selected()).ID)

	s.SelectVideoByID(context.Background(), "nope")
	assert.Equal(t, "video_3", mustGet(t, s.Selected()).ID, "unknown id leaves selection")
	_, ok := s.Err().Get()
	assert.False(t, ok, "not found is not reported")
}

func TestToggleLike_UpdatesAllThreeViews(t *testing.T) {
	s, _ := loaded(t)
	v2 := find(t, mustGet(t, s.Catalog()), "video_2")
	require.True(t, v2.IsLiked)
	require.Equal(t, 2100, v2.LikeCount)

	s.SelectVideo(v2)
	s.ToggleLike(context.Background(), v2)

	for name, got := range map[string]domain.Video{
		"selected": mustGet(t, s.Selected()),
		"catalog":  find(t, mustGet(t, s.Catalog()), "video_2"),
		"feed":     find(t, mustGet(t, s.Feed()), "video_2"),
	} {
		assert.Falsef(t, got.IsLiked, "%s liked", name)
		assert.Equalf(t, 2099, got.LikeCount, "%s likeCount", name)
	}
}

func TestToggleLike_TwiceRestoresOriginal(t *testing.T) {
	s, _ := loaded(t)
	original := find(t, mustGet(t, s.Catalog()), "video_1")

	s.ToggleLike(context.Background(), original)
	s.ToggleLike(context.Background(), mustGet(t, s.Selected()))

	assert.True(t, original.Equal(find(t, mustGet(t, s.Catalog()), "video_1")))
	assert.True(t, original.Equal(mustGet(t, s.Selected())))
}

func TestToggleLike_TouchesOnlyTheTarget(t *testing.T) {
	s, _ := loaded(t)
	before := mustGet(t, s.Catalog())

	s.ToggleLike(context.Background(), before[0])
	after := mustGet(t, s.Catalog())

	require.Len(t, after, len(before))
	assert.NotEqual(t, before[0].IsLiked, after[0].IsLiked)
	assert.Equal(t, before[1:], after[1:])
	assert.False(t, before[0].IsLiked, "previous snapshot must not be mutated")
}

func TestToggleLike_RollsBackOnFailure(t *testing.T) {
	s, src := loaded(t)
	v := find(t, mustGet(t, s.Catalog()), "video_1")
	s.SelectVideo(v)

	var seen []bool
	unsubscribe := s.Selected().Subscribe(func(v domain.Video) { seen = append(seen, v.IsLiked) })
	defer unsubscribe()

	src.FailNext(errors.New("offline"))
	s.ToggleLike(context.Background(), v)

	assert.Equal(t, []bool{false, true, false}, seen, "replay, optimistic, rollback")
	assert.True(t, v.Equal(mustGet(t, s.Selected())))
	assert.True(t, v.Equal(find(t, mustGet(t, s.Feed()), "video_1")))
	assert.Equal(t, "Like failed: offline", mustGet(t, s.Err()))
}

type rejectingSource struct{ *mock.Catalog }

func (rejectingSource) ToggleLike(context.Context, string) (bool, error) { return false, nil }

func TestToggleLike_RejectionRollsBack(t *testing.T) {
	s := New(rejectingSource{mock.New()})
	t.Cleanup(s.Close)
	s.LoadFeed(context.Background())
	v := find(t, mustGet(t, s.Catalog()), "video_4")

	s.ToggleLike(context.Background(), v)

	assert.True(t, v.Equal(find(t, mustGet(t, s.Catalog()), "video_4")))
	assert.Contains(t, mustGet(t, s.Err()), domain.ErrRejected.Error())
}

// stallingSource holds ToggleLike until release is closed, then fails it.
type stallingSource struct {
	*mock.Catalog
	started chan struct{}
	release chan struct{}
}

func (s stallingSource) ToggleLike(context.Context, string) (bool, error) {
	close(s.started)
	<-s.release
	return false, errors.New("offline")
}

func TestToggleLike_RollbackKeepsCommentAddedMeanwhile(t *testing.T) {
	src := stallingSource{Catalog: mock.New(), started: make(chan struct{}), release: make(chan struct{})}
	s := New(src)
	t.Cleanup(s.Close)
	ctx := context.Background()
	s.LoadFeed(ctx)
	v1 := find(t, mustGet(t, s.Catalog()), "video_1")
	s.SelectVideo(v1)
	s.LoadComments(ctx, "video_1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.ToggleLike(ctx, v1)
	}()
	<-src.started
	s.SubmitComment(ctx, "video_1", "Nice!", me)
	close(src.release)
	<-done

	assert.Len(t, mustGet(t, s.Comments()), 4)
	for name, got := range map[string]domain.Video{
		"selected": mustGet(t, s.Selected()),
		"catalog":  find(t, mustGet(t, s.Catalog()), "video_1"),
		"feed":     find(t, mustGet(t, s.Feed()), "video_1"),
	} {
		assert.Equal(t, 90, got.CommentCount, name)
		assert.False(t, got.IsLiked, name)
		assert.Equal(t, 1200, got.LikeCount, name)
	}
	assert.Equal(t, "Like failed: offline", mustGet(t, s.Err()))
}

func TestToggleLike_VideoOutsideLists(t *testing.T) {
	s, _ := loaded(t, WithFeedLimit(1))
	feedBefore := mustGet(t, s.Feed())
	outsider := domain.Video{ID: "elsewhere", LikeCount: 3}

	s.ToggleLike(context.Background(), outsider)

	assert.Equal(t, feedBefore, mustGet(t, s.Feed()))
	assert.Equal(t, 4, mustGet(t, s.Selected()).LikeCount)
}

func TestSubmitComment_BlankIsNoOp(t *testing.T) {
	s, _ := loaded(t)
	v1 := find(t, mustGet(t, s.Catalog()), "video_1")
	s.SelectVideo(v1)

	s.SubmitComment(context.Background(), "video_1", "  ", me)

	_, ok := s.Comments().Get()
	assert.False(t, ok)
	assert.Equal(t, 89, mustGet(t, s.Selected()).CommentCount)
	assert.Equal(t, 89, find(t, mustGet(t, s.Catalog()), "video_1").CommentCount)
}

func TestSubmitComment_PrependsAndCounts(t *testing.T) {
	s, _ := loaded(t)
	v1 := find(t, mustGet(t, s.Catalog()), "video_1")
	s.SelectVideo(v1)
	s.LoadComments(context.Background(), "video_1")

	s.SubmitComment(context.Background(), "video_1", "Nice!", me)

	comments := mustGet(t, s.Comments())
	require.Len(t, comments, 4)
	assert.Equal(t, "Nice!", comments[0].Content)
	assert.Zero(t, comments[0].LikeCount)
	assert.Equal(t, me, comments[0].User)
	assert.Equal(t, "comment_1", comments[1].ID)

	assert.Equal(t, 90, mustGet(t, s.Selected()).CommentCount)
	assert.Equal(t, 90, find(t, mustGet(t, s.Catalog()), "video_1").CommentCount)
	assert.Equal(t, 90, find(t, mustGet(t, s.Feed()), "video_1").CommentCount)
}

func TestSubmitComment_OtherSelectionUntouched(t *testing.T) {
	s, _ := loaded(t)
	v3 := find(t, mustGet(t, s.Catalog()), "video_3")
	s.SelectVideo(v3)

	s.SubmitComment(context.Background(), "video_1", "hello", me)

	assert.True(t, v3.Equal(mustGet(t, s.Selected())))
	assert.Equal(t, 90, find(t, mustGet(t, s.Catalog()), "video_1").CommentCount)
	assert.Len(t, mustGet(t, s.Comments()), 1)
}

func TestSubmitComment_FailureLeavesState(t *testing.T) {
	s, src := loaded(t)
	s.LoadComments(context.Background(), "video_1")
	before := mustGet(t, s.Comments())

	src.FailNext(errors.New("timeout"))
	s.SubmitComment(context.Background(), "video_1", "hi", me)

	assert.Equal(t, before, mustGet(t, s.Comments()))
	assert.Equal(t, 89, find(t, mustGet(t, s.Catalog()), "video_1").CommentCount)
	assert.Equal(t, "Post comment failed: timeout", mustGet(t, s.Err()))
}

func TestToggleCommentLike(t *testing.T) {
	s, src := loaded(t)
	s.LoadComments(context.Background(), "video_1")
	c2 := mustGet(t, s.Comments())[1]
	require.True(t, c2.IsLiked)

	s.ToggleCommentLike(context.Background(), c2)
	got := mustGet(t, s.Comments())[1]
	assert.False(t, got.IsLiked)
	assert.Equal(t, 14, got.LikeCount)
	assert.Equal(t, 89, find(t, mustGet(t, s.Catalog()), "video_1").CommentCount)

	src.FailNext(errors.New("nope"))
	s.ToggleCommentLike(context.Background(), got)
	assert.Equal(t, got, mustGet(t, s.Comments())[1], "rolled back")
}

func TestWatch_DeliversEverySnapshotInOrder(t *testing.T) {
	s, _ := loaded(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := s.Selected().Watch(ctx)

	v := find(t, mustGet(t, s.Catalog()), "video_5")
	s.SelectVideo(v)
	for range 3 {
		cur, _ := s.Selected().Get()
		s.ToggleLike(context.Background(), cur)
	}

	want := []bool{false, true, false, true}
	for i, w := range want {
		select {
		case got := <-ch:
			assert.Equalf(t, w, got.IsLiked, "snapshot %d", i)
		case <-time.After(time.Second):
			t.Fatalf("snapshot %d not delivered", i)
		}
	}
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	ch := s.Err().Watch(ctx)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
	assert.Eventually(t, func() bool { return s.Err().Subscribers() == 0 }, time.Second, 5*time.Millisecond)
}

func TestClose_EndsWatchersAndIgnoresMutations(t *testing.T) {
	s, _ := loaded(t)
	ch := s.Feed().Watch(context.Background())
	<-ch // replay

	s.Close()
	_, ok := <-ch
	assert.False(t, ok)

	before := mustGet(t, s.Feed())
	s.ToggleLike(context.Background(), before[0])
	assert.Equal(t, before, mustGet(t, s.Feed()))
}
