package storage

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

//go:generate moq -out sessionstorage_mock.go . SessionStorage

// SessionStorage хранит состояние одной пользовательской сессии.
// Данные волатильны и читаются только для восстановления последнего показа.
type SessionStorage interface {
	// SaveLastQuote запоминает последнюю показанную цитату
	SaveLastQuote(ctx context.Context, quote models.Quote) error

	// GetLastQuote возвращает последнюю показанную цитату.
	// Returns ErrLastQuoteNotFound if nothing was shown in this session
	GetLastQuote(ctx context.Context) (*models.Quote, error)

	// ClearSession удаляет все данные сессии
	ClearSession(ctx context.Context) error
}
