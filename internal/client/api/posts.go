package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/pkg/api"
)

// ListPosts получает коллекцию постов. Retryable ошибки повторяются
func (c *Client) ListPosts(ctx context.Context) ([]api.Post, error) {
	body, err := c.doWithRetry(ctx, http.MethodGet)
	if err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}

	var posts []api.Post
	if err := json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}

	return posts, nil
}

// CreatePost создает пост. Запрос выполняется ровно один раз
func (c *Client) CreatePost(ctx context.Context, req api.CreatePostRequest) (*api.Post, error) {
	body, err := c.doRequest(ctx, http.MethodPost, req)
	if err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}

	var post api.Post
	if len(body) > 0 {
		if err := json.Unmarshal(body, &post); err != nil {
			return nil, fmt.Errorf("failed to decode created post: %w", err)
		}
	}

	return &post, nil
}

// FetchBatch получает посты и отображает первые BatchLimit из них в цитаты
func (c *Client) FetchBatch(ctx context.Context) ([]models.Quote, error) {
	posts, err := c.ListPosts(ctx)
	if err != nil {
		c.logger.Warn("Failed to fetch remote quotes", "error", err)
		return []models.Quote{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return QuotesFromPosts(posts), nil
}

// PushQuote отправляет цитату как пост: title = text, body = category
func (c *Client) PushQuote(ctx context.Context, q models.Quote) bool {
	_, err := c.CreatePost(ctx, api.CreatePostRequest{
		Title:  q.Text,
		Body:   q.Category,
		UserID: c.userID,
	})
	if err != nil {
		c.logger.Warn("Failed to push quote", "quote_id", q.ID, "error", err)
		return false
	}

	c.logger.Debug("Quote pushed", "quote_id", q.ID)
	return true
}

// QuotesFromPosts отображает не более BatchLimit постов в цитаты
func QuotesFromPosts(posts []api.Post) []models.Quote {
	n := min(len(posts), BatchLimit)
	quotes := make([]models.Quote, 0, n)
	for _, p := range posts[:n] {
		quotes = append(quotes, QuoteFromPost(p))
	}
	return quotes
}

// QuoteFromPost строит цитату с детерминированным серверным id
func QuoteFromPost(p api.Post) models.Quote {
	return models.Quote{
		ID:       models.RemoteIDPrefix + strconv.FormatInt(p.ID, 10),
		Text:     p.Title,
		Category: models.RemoteCategoryPrefix + strconv.FormatInt(p.UserID, 10),
	}
}
