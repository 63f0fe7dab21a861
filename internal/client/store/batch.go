package store

import (
	"fmt"
	"strings"

	"github.com/iudanet/quotesync/internal/clock"
	"github.com/iudanet/quotesync/internal/models"
	"github.com/iudanet/quotesync/internal/validation"
)

// Batch is a private working copy of the collection handed to Apply.
// Changes made through it become visible only after the whole batch is persisted.
type Batch struct {
	clock  *clock.IDClock
	index  map[string]int
	texts  map[string]struct{}
	quotes []models.Quote
	dirty  bool
}

func newBatch(quotes []models.Quote, c *clock.IDClock) *Batch {
	b := &Batch{
		clock:  c,
		quotes: models.CloneQuotes(quotes),
	}
	b.index = buildIndex(b.quotes)
	return b
}

// Len returns the number of quotes in the batch
func (b *Batch) Len() int {
	return len(b.quotes)
}

// Lookup returns the quote with the given id
func (b *Batch) Lookup(id string) (models.Quote, bool) {
	i, ok := b.index[id]
	if !ok {
		return models.Quote{}, false
	}
	return b.quotes[i], true
}

// HasText reports whether any quote carries exactly this text
func (b *Batch) HasText(text string) bool {
	if b.texts == nil {
		b.texts = make(map[string]struct{}, len(b.quotes))
		for _, q := range b.quotes {
			b.texts[q.Text] = struct{}{}
		}
	}
	_, ok := b.texts[text]
	return ok
}

// Upsert replaces the quote with the same id in place or appends it.
// Returns true when the quote was appended.
func (b *Batch) Upsert(q models.Quote) bool {
	b.dirty = true

	if i, ok := b.index[q.ID]; ok {
		b.quotes[i] = q
		// индекс текстов перестроится при следующем HasText
		b.texts = nil
		return false
	}

	b.index[q.ID] = len(b.quotes)
	b.quotes = append(b.quotes, q)
	if b.texts != nil {
		b.texts[q.Text] = struct{}{}
	}
	return true
}

// InsertNew appends a quote with a fresh local id.
// Text and category are trimmed; blank values fail with ErrValidation.
func (b *Batch) InsertNew(text, category string) (models.Quote, error) {
	if err := validation.ValidateQuote(text, category); err != nil {
		return models.Quote{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	q := models.Quote{
		ID:       b.NewLocalID(),
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
	}
	b.Upsert(q)
	return q, nil
}

// NewLocalID returns a local id not used by any quote in the batch
func (b *Batch) NewLocalID() string {
	for {
		id := b.clock.NextLocalID()
		if _, taken := b.index[id]; !taken {
			return id
		}
	}
}

func buildIndex(quotes []models.Quote) map[string]int {
	index := make(map[string]int, len(quotes))
	for i, q := range quotes {
		index[q.ID] = i
	}
	return index
}
