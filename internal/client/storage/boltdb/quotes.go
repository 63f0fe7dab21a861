package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// LoadQuotes returns the stored quote sequence
func (s *Storage) LoadQuotes(ctx context.Context) ([]models.Quote, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	data, err := s.get(bucketLocal, storage.KeyQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}
	if data == nil {
		return nil, storage.ErrQuotesNotFound
	}

	var quotes []models.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quotes: %w", err)
	}

	return quotes, nil
}

// SaveQuotes replaces the stored quote sequence in a single transaction
func (s *Storage) SaveQuotes(ctx context.Context, quotes []models.Quote) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// nil сохраняем как пустой массив, чтобы отличать его от отсутствия ключа
	if quotes == nil {
		quotes = []models.Quote{}
	}

	data, err := json.Marshal(quotes)
	if err != nil {
		return fmt.Errorf("failed to marshal quotes: %w", err)
	}

	if err := s.put(bucketLocal, storage.KeyQuotes, data); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetCategoryFilter returns the last selected category filter
func (s *Storage) GetCategoryFilter(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	data, err := s.get(bucketLocal, storage.KeyLastCategoryFilter)
	if err != nil {
		return "", fmt.Errorf("failed to get category filter: %w", err)
	}
	if data == nil {
		return "", storage.ErrFilterNotFound
	}

	return string(data), nil
}

// SaveCategoryFilter stores the last selected category filter
func (s *Storage) SaveCategoryFilter(ctx context.Context, filter string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if err := s.put(bucketLocal, storage.KeyLastCategoryFilter, []byte(filter)); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
