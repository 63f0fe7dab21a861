package sync

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/quotesync/internal/client/notify"
)

const operationSync = "sync"

// pass performs one reconciliation pass:
// 1. Pushes pending local quotes
// 2. Fetches the remote batch
// 3. Reconciles it into the store and notifies about changes
func (s *Scheduler) pass(ctx context.Context) (*PassResult, error) {
	result := &PassResult{
		ID:      uuid.NewString(),
		Skipped: int(s.skipped.Swap(0)),
	}
	logger := s.logger.With("pass_id", result.ID)
	logger.Debug("Starting sync pass")

	startLen := s.store.Len()

	s.pushPending(ctx, logger, result)

	batch, err := s.gateway.FetchBatch(ctx)
	result.Fetched = len(batch)
	if err != nil {
		s.notifier.Notify(ctx, notify.Failed(operationSync, err))
		return result, err
	}
	if len(batch) == 0 {
		logger.Debug("Remote batch is empty, nothing to merge")
		result.Outcome.Timestamp = time.Now()
		s.saveLastSync(ctx, logger, result)
		return result, nil
	}

	outcome, err := s.reconciler.Reconcile(ctx, s.store, batch)
	result.Outcome = outcome
	if err != nil {
		s.notifier.Notify(ctx, notify.Failed(operationSync, err))
		return result, err
	}

	result.Grew = s.store.Len() - startLen

	switch {
	case outcome.Changed():
		s.notifier.Notify(ctx, notify.Notification{
			Time:      outcome.Timestamp,
			Kind:      notify.KindSyncCompleted,
			Status:    notify.StatusOK,
			Operation: operationSync,
			Added:     outcome.Added,
			Conflicts: outcome.Conflicts,
		})
	case result.Grew > 0:
		// Рост без добавлений означает параллельные локальные вставки
		s.notifier.Notify(ctx, notify.Notification{
			Time:      outcome.Timestamp,
			Kind:      notify.KindRecordsAdded,
			Status:    notify.StatusOK,
			Operation: operationSync,
			Count:     result.Grew,
		})
	}

	s.saveLastSync(ctx, logger, result)

	logger.Info("Sync pass completed",
		"fetched", result.Fetched,
		"pushed", result.Pushed,
		"push_failed", result.PushFailed,
		"added", outcome.Added,
		"conflicts", outcome.Conflicts,
		"grew", result.Grew)

	return result, nil
}

// pushPending отправляет локальные цитаты, ещё не подтверждённые сервером.
// Неудачные отправки остаются в очереди до следующего прохода
func (s *Scheduler) pushPending(ctx context.Context, logger *slog.Logger, result *PassResult) {
	if s.metadata == nil {
		return
	}

	ids, err := s.metadata.GetPendingPushes(ctx)
	if err != nil {
		logger.Warn("Failed to get pending pushes", "error", err)
		return
	}

	for _, id := range ids {
		q, ok := s.store.Lookup(id)
		if !ok {
			// Цитата исчезла из хранилища: отправлять нечего
			if err := s.metadata.RemovePendingPush(ctx, id); err != nil {
				logger.Warn("Failed to drop stale pending push", "quote_id", id, "error", err)
			}
			continue
		}

		if !s.gateway.PushQuote(ctx, q) {
			result.PushFailed++
			continue
		}

		result.Pushed++
		if err := s.metadata.RemovePendingPush(ctx, id); err != nil {
			logger.Warn("Failed to clear pending push", "quote_id", id, "error", err)
		}
	}
}

func (s *Scheduler) saveLastSync(ctx context.Context, logger *slog.Logger, result *PassResult) {
	if s.metadata == nil {
		return
	}

	ts := result.Outcome.Timestamp
	if ts.IsZero() {
		return
	}
	if err := s.metadata.SaveLastSyncTimestamp(ctx, ts.Unix()); err != nil {
		// Не прерываем синхронизацию из-за ошибки сохранения timestamp
		logger.Warn("Failed to save last sync timestamp", "error", err)
	}
}
