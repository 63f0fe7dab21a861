// Package sync runs reconciliation passes against the remote source,
// periodically and on demand. Passes never overlap.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/notify"
	"github.com/iudanet/quotesync/internal/client/reconcile"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс планировщика синхронизации
type Service interface {
	// Start запускает немедленный проход и затем по одному на каждый тик
	Start(ctx context.Context, interval time.Duration) error

	// Stop отменяет будущие проходы и ждёт завершения текущего (ограничено ctx)
	Stop(ctx context.Context) error

	// RunPass выполняет один проход по запросу
	RunPass(ctx context.Context) (*PassResult, error)
}

// PassResult contains the results of one reconciliation pass
type PassResult struct {
	Outcome    models.SyncOutcome
	ID         string // идентификатор прохода для логов
	Fetched    int    // количество полученных с сервера цитат
	Pushed     int    // количество подтверждённых сервером отправок
	PushFailed int    // количество отправок, оставшихся в очереди
	Grew       int    // на сколько выросло хранилище за проход
	Skipped    int    // тиков, пропущенных из-за незавершённого прохода
}

// Scheduler drives the Remote Gateway and the Reconciler
type Scheduler struct {
	gateway    api.Gateway
	metadata   storage.MetadataStorage
	notifier   notify.Notifier
	store      *store.Store
	reconciler *reconcile.Reconciler
	logger     *slog.Logger
	cancel     context.CancelFunc

	wg       sync.WaitGroup
	mu       sync.Mutex
	skipped  atomic.Int64
	inFlight atomic.Bool
	running  bool
}

var _ Service = (*Scheduler)(nil)

// NewScheduler creates a new sync scheduler
func NewScheduler(gateway api.Gateway, st *store.Store, reconciler *reconcile.Reconciler, metadata storage.MetadataStorage, notifier notify.Notifier, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notify.Discard
	}
	if reconciler == nil {
		reconciler = reconcile.New(nil, logger)
	}
	return &Scheduler{
		gateway:    gateway,
		store:      st,
		reconciler: reconciler,
		metadata:   metadata,
		notifier:   notifier,
		logger:     logger,
	}
}

// Start begins the sync loop
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	s.wg.Add(1)
	go s.run(loopCtx, interval)

	s.logger.Info("Sync scheduler started", "interval", interval)

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Sync scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main sync loop
func (s *Scheduler) run(ctx context.Context, interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Немедленный проход при старте
	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick запускает проход, если предыдущий уже завершился, иначе тик теряется
func (s *Scheduler) tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.skipped.Add(1)
		s.logger.Debug("Sync tick dropped, previous pass still in flight")
		return
	}

	// Stop не прерывает уже начатый проход
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inFlight.Store(false)

		if _, err := s.pass(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("Scheduled sync pass failed", "error", err)
		}
	}()
}

// RunPass performs one on-demand pass
func (s *Scheduler) RunPass(ctx context.Context) (*PassResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrPassInFlight
	}
	defer s.inFlight.Store(false)

	return s.pass(ctx)
}
