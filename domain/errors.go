package domain

import "errors"

var (
	// ErrNotFound indicates the requested video or comment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyComment indicates the user submitted a blank comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrRejected indicates the backend refused a like toggle.
	ErrRejected = errors.New("request rejected")
)
