package storage

import (
	"context"

	"github.com/iudanet/quotesync/internal/models"
)

// Ключи долговременного хранилища
const (
	KeyQuotes             = "quotes"
	KeyLastCategoryFilter = "lastCategoryFilter"
	KeyLastQuote          = "lastQuote"
)

//go:generate moq -out quotestorage_mock.go . QuoteStorage

// QuoteStorage defines the durable mirror of the quote collection.
// The whole sequence is written at once: SaveQuotes either stores
// the complete slice or returns an error and leaves the previous value intact.
type QuoteStorage interface {
	// LoadQuotes returns the stored quote sequence in insertion order.
	// Returns ErrQuotesNotFound if nothing has been stored yet
	LoadQuotes(ctx context.Context) ([]models.Quote, error)

	// SaveQuotes replaces the stored sequence
	SaveQuotes(ctx context.Context, quotes []models.Quote) error

	// GetCategoryFilter returns the last selected category filter.
	// Returns ErrFilterNotFound if no filter was saved
	GetCategoryFilter(ctx context.Context) (string, error)

	// SaveCategoryFilter stores the last selected category filter
	SaveCategoryFilter(ctx context.Context, filter string) error
}
