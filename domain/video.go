package domain

import "time"

// User is the author of a video or comment.
type User struct {
	ID             string
	Username       string
	AvatarURL      string // Avatar asset reference
	FollowersCount int
}

// Video is a single short video in the catalog.
type Video struct {
	ID           string
	Title        string
	Description  string
	VideoURL     string // Media asset reference
	CoverURL     string // Cover image asset reference
	Author       User
	PlayCount    int
	LikeCount    int
	CommentCount int
	ShareCount   int
	Duration     int // Seconds
	CreatedAt    time.Time
	IsLiked      bool // Per-viewer flag, mutated together with LikeCount
}

// Comment is a viewer comment attached to a video.
type Comment struct {
	ID        string
	VideoID   string
	User      User
	Content   string
	LikeCount int
	CreatedAt time.Time
	IsLiked   bool
}

// WithLikeToggled returns a copy with IsLiked flipped and LikeCount adjusted by one.
// LikeCount never goes below zero, so for a liked video with a zero count two
// toggles yield a count of 1. Everywhere else the toggle is its own inverse.
func (v Video) WithLikeToggled() Video {
	v.LikeCount = toggleCount(v.LikeCount, v.IsLiked)
	v.IsLiked = !v.IsLiked
	return v
}

// WithCommentAdded returns a copy with CommentCount incremented.
func (v Video) WithCommentAdded() Video {
	v.CommentCount++
	return v
}

// Equal reports structural equality. Timestamps compare by instant.
func (v Video) Equal(o Video) bool {
	if !v.CreatedAt.Equal(o.CreatedAt) {
		return false
	}
	v.CreatedAt, o.CreatedAt = time.Time{}, time.Time{}
	return v == o
}

// WithLikeToggled returns a copy with IsLiked flipped and LikeCount adjusted by
// one, clamped at zero like Video.WithLikeToggled.
func (c Comment) WithLikeToggled() Comment {
	c.LikeCount = toggleCount(c.LikeCount, c.IsLiked)
	c.IsLiked = !c.IsLiked
	return c
}

func toggleCount(count int, liked bool) int {
	if liked {
		if count > 0 {
			return count - 1
		}
		return 0
	}
	return count + 1
}
