// Package api implements the Remote Gateway: HTTP access to a
// JSONPlaceholder-compatible /posts endpoint and mapping of posts to quotes.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/quotesync/internal/models"
)

const (
	// BatchLimit is the maximum number of posts consumed per fetch
	BatchLimit = 5

	DefaultTimeout      = 10 * time.Second
	DefaultMaxRetries   = 2
	DefaultRetryBackoff = 500 * time.Millisecond
	DefaultUserID       = 1
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway определяет интерфейс удалённого источника цитат
type Gateway interface {
	// FetchBatch получает до BatchLimit цитат. При любой ошибке возвращает
	// пустой (не nil) срез и ошибку, оборачивающую ErrRemoteUnavailable
	FetchBatch(ctx context.Context) ([]models.Quote, error)

	// PushQuote отправляет цитату и сообщает, подтвердил ли сервер запись.
	// Ошибки не возвращаются, только логируются
	PushQuote(ctx context.Context, q models.Quote) bool
}

// Client представляет HTTP клиент posts-эндпоинта
type Client struct {
	httpClient   *http.Client
	logger       *slog.Logger
	endpoint     string
	token        string
	userID       int64
	maxRetries   int
	retryBackoff time.Duration
}

var _ Gateway = (*Client)(nil)

// ClientOption configures a Client
type ClientOption func(*Client)

// NewClient создает новый API клиент для полного URL коллекции постов
func NewClient(endpoint string, opts ...ClientOption) *Client {
	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:       slog.Default(),
		userID:       DefaultUserID,
		maxRetries:   DefaultMaxRetries,
		retryBackoff: DefaultRetryBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration for reads
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithToken sets the bearer token sent with every request
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithUserID sets the userId attached to pushed posts
func WithUserID(id int64) ClientOption {
	return func(c *Client) {
		c.userID = id
	}
}
