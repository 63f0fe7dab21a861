package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

// DefaultSeedPosts возвращает демонстрационные посты для пустой базы
func DefaultSeedPosts() []*models.Post {
	return []*models.Post{
		{UserID: 1, Title: "sunt aut facere repellat provident occaecati excepturi optio reprehenderit", Body: "quia et suscipit suscipit recusandae consequuntur expedita et cum"},
		{UserID: 1, Title: "qui est esse", Body: "est rerum tempore vitae sequi sint nihil reprehenderit dolor beatae"},
		{UserID: 1, Title: "ea molestias quasi exercitationem repellat qui ipsa sit aut", Body: "et iusto sed quo iure voluptatem occaecati omnis eligendi aut ad"},
		{UserID: 1, Title: "eum et est occaecati", Body: "ullam et saepe reiciendis voluptatem adipisci sit amet autem assumenda"},
		{UserID: 1, Title: "nesciunt quas odio", Body: "repudiandae veniam quaerat sunt sed alias aut fugiat sit autem sed est"},
		{UserID: 2, Title: "et ea vero quia laudantium autem", Body: "delectus reiciendis molestiae occaecati non minima eveniet qui voluptatibus"},
	}
}

// Seed вставляет посты только если таблица пуста. Возвращает число вставленных постов
func (s *Storage) Seed(ctx context.Context, posts []*models.Post) (int, error) {
	n, err := s.CountPosts(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO posts (user_id, title, body, created_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare seed insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	now := time.Now().UnixMilli()
	for _, post := range posts {
		if _, err := stmt.ExecContext(ctx, post.UserID, post.Title, post.Body, now); err != nil {
			return 0, fmt.Errorf("failed to seed post: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return len(posts), nil
}
