package storage

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

//go:generate moq -out posts_mock.go . PostStorage

// PostStorage defines interface for posts persistence
type PostStorage interface {
	// CreatePost stores a new post and fills in its ID and CreatedAt
	CreatePost(ctx context.Context, post *models.Post) error

	// GetPost retrieves a single post by ID
	// Returns ErrPostNotFound if the post doesn't exist
	GetPost(ctx context.Context, id int64) (*models.Post, error)

	// ListPosts returns posts in ascending ID order.
	// limit <= 0 means no limit. Returns empty slice if no posts found
	ListPosts(ctx context.Context, limit int) ([]*models.Post, error)

	// CountPosts returns the number of stored posts
	CountPosts(ctx context.Context) (int, error)
}
