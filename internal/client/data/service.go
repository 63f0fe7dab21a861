package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
)

// ErrNoQuotes indicates that the filtered quote set is empty
var ErrNoQuotes = errors.New("no quotes available")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс пользовательских операций над цитатами
type Service interface {
	AddQuote(ctx context.Context, text, category string, push bool) (*AddResult, error)
	ListQuotes(filter string) []models.Quote
	Categories() []string
	SelectFilter(ctx context.Context, filter string) error
	CurrentFilter() string
	RandomQuote(ctx context.Context, filter string) (*models.Quote, error)
	LastShown(ctx context.Context) (*models.Quote, error)
}

// AddResult contains the outcome of a user add
type AddResult struct {
	Quote         models.Quote
	PushAttempted bool // была ли попытка немедленной отправки
	Pushed        bool // подтвердил ли сервер запись
}

// service handles user actions over the Record Store
type service struct {
	store    *store.Store
	gateway  api.Gateway
	metadata storage.MetadataStorage
	session  storage.SessionStorage
	logger   *slog.Logger
	intn     func(n int) int
}

// NewService creates a new quote service. gateway may be nil for offline use
func NewService(st *store.Store, gateway api.Gateway, metadata storage.MetadataStorage, session storage.SessionStorage, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:    st,
		gateway:  gateway,
		metadata: metadata,
		session:  session,
		logger:   logger,
		intn:     rand.IntN,
	}
}

// AddQuote добавляет цитату локально и, если push, сразу отправляет её на сервер.
// Неудачная отправка не откатывает локальную запись: цитата остаётся в очереди
// и будет отправлена следующим проходом синхронизации
func (s *service) AddQuote(ctx context.Context, text, category string, push bool) (*AddResult, error) {
	q, err := s.store.InsertNew(ctx, text, category)
	if err != nil {
		return nil, fmt.Errorf("failed to add quote: %w", err)
	}

	result := &AddResult{Quote: q}

	if err := s.metadata.AddPendingPush(ctx, q.ID); err != nil {
		s.logger.Warn("Failed to mark quote as pending push", "quote_id", q.ID, "error", err)
	}

	if !push || s.gateway == nil {
		return result, nil
	}

	result.PushAttempted = true
	result.Pushed = s.gateway.PushQuote(ctx, q)
	if result.Pushed {
		if err := s.metadata.RemovePendingPush(ctx, q.ID); err != nil {
			s.logger.Warn("Failed to clear pending push", "quote_id", q.ID, "error", err)
		}
	}

	return result, nil
}

// ListQuotes returns quotes of the given category; empty filter means the selected one
func (s *service) ListQuotes(filter string) []models.Quote {
	if filter == "" {
		filter = s.store.Filter()
	}
	return s.store.Get(filter)
}

func (s *service) Categories() []string {
	return s.store.Categories()
}

// SelectFilter сохраняет выбранный фильтр категории
func (s *service) SelectFilter(ctx context.Context, filter string) error {
	if err := s.store.SetFilter(ctx, filter); err != nil {
		return fmt.Errorf("failed to select filter: %w", err)
	}
	return nil
}

func (s *service) CurrentFilter() string {
	return s.store.Filter()
}

// RandomQuote выбирает случайную цитату и запоминает её как последнюю показанную
func (s *service) RandomQuote(ctx context.Context, filter string) (*models.Quote, error) {
	quotes := s.ListQuotes(filter)
	if len(quotes) == 0 {
		return nil, ErrNoQuotes
	}

	q := quotes[s.intn(len(quotes))]

	if err := s.session.SaveLastQuote(ctx, q); err != nil {
		// Показ важнее восстановления сессии
		s.logger.Warn("Failed to save last shown quote", "error", err)
	}

	return &q, nil
}

// LastShown возвращает последнюю показанную в сессии цитату
func (s *service) LastShown(ctx context.Context) (*models.Quote, error) {
	q, err := s.session.GetLastQuote(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last shown quote: %w", err)
	}
	return q, nil
}
