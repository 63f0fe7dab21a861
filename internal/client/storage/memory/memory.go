// Package memory implements client storage interfaces in process memory.
// Nothing survives a restart; used by the --ephemeral client mode and in tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

// Storage implements storage.QuoteStorage, storage.SessionStorage and storage.MetadataStorage
type Storage struct {
	lastQuote    *models.Quote
	importHashes map[string]struct{}
	quotes       []models.Quote
	pending      []string
	filter       string
	lastSync     int64
	mu           sync.RWMutex
	hasQuotes    bool
	hasFilter    bool
}

var _ storage.Storage = (*Storage)(nil)

// New creates an empty in-memory storage
func New() *Storage {
	return &Storage{
		importHashes: make(map[string]struct{}),
	}
}

func (s *Storage) LoadQuotes(ctx context.Context) ([]models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasQuotes {
		return nil, storage.ErrQuotesNotFound
	}
	return models.CloneQuotes(s.quotes), nil
}

func (s *Storage) SaveQuotes(ctx context.Context, quotes []models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes = models.CloneQuotes(quotes)
	if s.quotes == nil {
		s.quotes = []models.Quote{}
	}
	s.hasQuotes = true
	return nil
}

func (s *Storage) GetCategoryFilter(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.hasFilter {
		return "", storage.ErrFilterNotFound
	}
	return s.filter, nil
}

func (s *Storage) SaveCategoryFilter(ctx context.Context, filter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
	s.hasFilter = true
	return nil
}

func (s *Storage) SaveLastQuote(ctx context.Context, quote models.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastQuote = &quote
	return nil
}

func (s *Storage) GetLastQuote(ctx context.Context) (*models.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastQuote == nil {
		return nil, storage.ErrLastQuoteNotFound
	}
	q := *s.lastQuote
	return &q, nil
}

func (s *Storage) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastQuote = nil
	return nil
}

func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSync = timestamp
	return nil
}

func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastSync, nil
}

func (s *Storage) AddPendingPush(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.Contains(s.pending, id) {
		s.pending = append(s.pending, id)
	}
	return nil
}

func (s *Storage) RemovePendingPush(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = slices.DeleteFunc(s.pending, func(v string) bool { return v == id })
	return nil
}

func (s *Storage) GetPendingPushes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.pending))
	copy(ids, s.pending)
	return ids, nil
}

func (s *Storage) HasImportHash(ctx context.Context, hash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.importHashes[hash]
	return ok, nil
}

func (s *Storage) SaveImportHash(ctx context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.importHashes[hash] = struct{}{}
	return nil
}

// Close is a no-op kept for parity with the bbolt storage
func (s *Storage) Close() error {
	return nil
}
