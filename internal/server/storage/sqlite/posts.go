package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/server/storage"
)

// CreatePost stores a new post and fills in its ID and CreatedAt
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) error {
	if post == nil || strings.TrimSpace(post.Title) == "" {
		return fmt.Errorf("%w: title is required", storage.ErrInvalidPost)
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO posts (user_id, title, body, created_at)
		VALUES (?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		post.UserID,
		post.Title,
		post.Body,
		post.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get post id: %w", err)
	}
	post.ID = id

	return nil
}

// GetPost retrieves a single post by ID
func (s *Storage) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, user_id, title, body, created_at
		FROM posts
		WHERE id = ?
	`

	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns posts in ascending ID order; limit <= 0 means no limit
func (s *Storage) ListPosts(ctx context.Context, limit int) ([]*models.Post, error) {
	// В SQLite LIMIT -1 означает "без ограничения"
	if limit <= 0 {
		limit = -1
	}

	query := `
		SELECT id, user_id, title, body, created_at
		FROM posts
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	posts := make([]*models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// CountPosts returns the number of stored posts
func (s *Storage) CountPosts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*models.Post, error) {
	var post models.Post
	var createdAt int64

	if err := row.Scan(&post.ID, &post.UserID, &post.Title, &post.Body, &createdAt); err != nil {
		return nil, err
	}
	post.CreatedAt = time.UnixMilli(createdAt)

	return &post, nil
}
