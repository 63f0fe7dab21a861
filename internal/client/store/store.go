// Package store owns the ordered in-memory quote collection and its durable mirror.
//
// Every mutation goes through Apply: the change is built on a private copy,
// written to storage once and only then made visible to readers.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/clock"
	"github.com/iudanet/quotesync/internal/models"
)

// Store is the Record Store
type Store struct {
	storage storage.QuoteStorage
	clock   *clock.IDClock
	logger  *slog.Logger
	index   map[string]int
	quotes  []models.Quote
	filter  string

	mu sync.RWMutex
	// writeMu сериализует мутации целиком: копия, запись, подмена
	writeMu sync.Mutex
}

// New hydrates a store from quoteStorage.
// An empty storage is seeded with models.DefaultQuotes and the seed is persisted.
func New(ctx context.Context, quoteStorage storage.QuoteStorage, idClock *clock.IDClock, logger *slog.Logger) (*Store, error) {
	if idClock == nil {
		idClock = clock.New(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		storage: quoteStorage,
		clock:   idClock,
		logger:  logger,
		filter:  models.CategoryAll,
	}

	quotes, err := quoteStorage.LoadQuotes(ctx)
	switch {
	case errors.Is(err, storage.ErrQuotesNotFound):
		quotes = models.DefaultQuotes()
		if err := quoteStorage.SaveQuotes(ctx, quotes); err != nil {
			return nil, fmt.Errorf("%w: seed quotes: %w", ErrPersistence, err)
		}
		logger.Info("Seeded empty store with default quotes", "count", len(quotes))
	case err != nil:
		return nil, fmt.Errorf("failed to load quotes: %w", err)
	}

	s.quotes, s.index = dedupeByID(quotes)
	for _, q := range s.quotes {
		idClock.ObserveID(q.ID)
	}

	filter, err := quoteStorage.GetCategoryFilter(ctx)
	switch {
	case err == nil:
		s.filter = filter
	case !errors.Is(err, storage.ErrFilterNotFound):
		logger.Warn("Failed to load category filter, using default", "error", err)
	}

	return s, nil
}

// dedupeByID восстанавливает инвариант уникальности id для данных,
// записанных вручную: повторный id перезаписывает запись на месте
func dedupeByID(quotes []models.Quote) ([]models.Quote, map[string]int) {
	out := make([]models.Quote, 0, len(quotes))
	index := make(map[string]int, len(quotes))
	for _, q := range quotes {
		if i, ok := index[q.ID]; ok {
			out[i] = q
			continue
		}
		index[q.ID] = len(out)
		out = append(out, q)
	}
	return out, index
}

// Apply runs fn against a private copy of the collection.
// If fn returns an error nothing changes. Otherwise the copy is persisted
// once and swapped in; a batch that changed nothing writes nothing.
func (s *Store) Apply(ctx context.Context, fn func(*Batch) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	b := newBatch(s.quotes, s.clock)
	s.mu.RUnlock()

	if err := fn(b); err != nil {
		return err
	}
	if !b.dirty {
		return nil
	}

	if err := s.storage.SaveQuotes(ctx, b.quotes); err != nil {
		s.logger.Error("Failed to persist quotes, changes discarded", "error", err)
		return fmt.Errorf("%w: save quotes: %w", ErrPersistence, err)
	}

	s.mu.Lock()
	s.quotes = b.quotes
	s.index = b.index
	s.mu.Unlock()

	return nil
}

// Get returns all quotes, or only those of the given category
// when filter is non-empty and not "all". The result is a copy.
func (s *Store) Get(filter string) []models.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		if q.MatchesCategory(filter) {
			out = append(out, q)
		}
	}
	return out
}

// Lookup returns the quote with the given id
func (s *Store) Lookup(id string) (models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Quote{}, false
	}
	return s.quotes[i], true
}

// Len returns the number of stored quotes
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Upsert replaces the quote with the same id in place or appends it
func (s *Store) Upsert(ctx context.Context, q models.Quote) error {
	if q.ID == "" {
		return fmt.Errorf("%w: id cannot be empty", ErrValidation)
	}
	return s.Apply(ctx, func(b *Batch) error {
		b.Upsert(q)
		return nil
	})
}

// InsertNew appends a quote with a fresh local id
func (s *Store) InsertNew(ctx context.Context, text, category string) (models.Quote, error) {
	var created models.Quote
	err := s.Apply(ctx, func(b *Batch) error {
		q, err := b.InsertNew(text, category)
		if err != nil {
			return err
		}
		created = q
		return nil
	})
	if err != nil {
		return models.Quote{}, err
	}
	return created, nil
}

// Categories returns "all" followed by distinct categories in first-seen order
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.categoriesLocked()
}

func (s *Store) categoriesLocked() []string {
	seen := make(map[string]struct{}, len(s.quotes))
	out := []string{models.CategoryAll}
	for _, q := range s.quotes {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		out = append(out, q.Category)
	}
	return out
}

// Filter returns the selected category filter.
// A filter whose category no longer exists falls back to "all".
func (s *Store) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if slices.Contains(s.categoriesLocked(), s.filter) {
		return s.filter
	}
	return models.CategoryAll
}

// SetFilter persists and selects a category filter. An empty filter means "all".
func (s *Store) SetFilter(ctx context.Context, filter string) error {
	if filter == "" {
		filter = models.CategoryAll
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.SaveCategoryFilter(ctx, filter); err != nil {
		return fmt.Errorf("%w: save category filter: %w", ErrPersistence, err)
	}

	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()

	return nil
}
