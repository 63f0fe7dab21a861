// Package reconcile merges remote quote batches into the Record Store.
//
// Policy is remote precedence: a remote quote always overwrites the local
// quote with the same id. Only a text difference counts as a conflict; a
// category-only change is overwritten silently.
package reconcile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
)

// Reconciler applies remote batches to a store
type Reconciler struct {
	now    func() time.Time
	logger *slog.Logger
}

// New creates a reconciler. A nil now means time.Now.
func New(now func() time.Time, logger *slog.Logger) *Reconciler {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{now: now, logger: logger}
}

// Reconcile merges batch into st in the order received and persists once.
// An empty batch writes nothing. On a persistence failure the store is
// unchanged and the returned outcome carries zero counts.
func (r *Reconciler) Reconcile(ctx context.Context, st *store.Store, batch []models.Quote) (models.SyncOutcome, error) {
	if len(batch) == 0 {
		return models.SyncOutcome{Timestamp: r.now()}, nil
	}

	var added, conflicts int
	err := st.Apply(ctx, func(b *store.Batch) error {
		added, conflicts = Merge(b, batch)
		return nil
	})
	if err != nil {
		return models.SyncOutcome{Timestamp: r.now()}, fmt.Errorf("failed to apply remote batch: %w", err)
	}

	outcome := models.SyncOutcome{
		Added:     added,
		Conflicts: conflicts,
		Timestamp: r.now(),
	}

	r.logger.Debug("Remote batch reconciled",
		"batch", len(batch),
		"added", outcome.Added,
		"conflicts", outcome.Conflicts)

	return outcome, nil
}

// Merge applies remote quotes to b and returns the added and conflict counts
func Merge(b *store.Batch, remote []models.Quote) (added, conflicts int) {
	for _, r := range remote {
		existing, found := b.Lookup(r.ID)
		switch {
		case !found:
			added++
		case existing.Text != r.Text:
			conflicts++
		}
		// Совпадающий текст: перезапись без подсчёта, категория может измениться
		b.Upsert(r)
	}
	return added, conflicts
}
