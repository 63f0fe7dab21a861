package storage

import "errors"

// Common storage errors
var (
	// ErrPostNotFound indicates that a post with the given id does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidPost indicates that a post is missing required fields
	ErrInvalidPost = errors.New("invalid post")
)
