package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// SaveLastQuote запоминает последнюю показанную цитату
func (s *Storage) SaveLastQuote(ctx context.Context, quote models.Quote) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("failed to marshal last quote: %w", err)
	}

	return s.put(bucketSession, storage.KeyLastQuote, data)
}

// GetLastQuote возвращает последнюю показанную цитату
func (s *Storage) GetLastQuote(ctx context.Context) (*models.Quote, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	data, err := s.get(bucketSession, storage.KeyLastQuote)
	if err != nil {
		return nil, fmt.Errorf("failed to get last quote: %w", err)
	}
	if data == nil {
		return nil, storage.ErrLastQuoteNotFound
	}

	quote := &models.Quote{}
	if err := json.Unmarshal(data, quote); err != nil {
		return nil, fmt.Errorf("failed to unmarshal last quote: %w", err)
	}

	return quote, nil
}

// ClearSession пересоздает session bucket
func (s *Storage) ClearSession(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketSession); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketSession); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear session transaction failed: %w", err)
	}

	return nil
}
