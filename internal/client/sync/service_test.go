package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/api"
	"github.com/iudanet/quotesync/internal/client/notify"
	"github.com/iudanet/quotesync/internal/client/reconcile"
	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/memory"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
)

var passTime = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

type fixture struct {
	store     *store.Store
	mem       *memory.Storage
	gateway   *api.GatewayMock
	notifier  *notify.NotifierMock
	scheduler *Scheduler
}

func newFixture(t *testing.T, initial []models.Quote, batch []models.Quote) *fixture {
	t.Helper()
	ctx := context.Background()

	mem := memory.New()
	if initial != nil {
		require.NoError(t, mem.SaveQuotes(ctx, initial))
	}
	st, err := store.New(ctx, mem, nil, nil)
	require.NoError(t, err)

	f := &fixture{
		store: st,
		mem:   mem,
		gateway: &api.GatewayMock{
			FetchBatchFunc: func(ctx context.Context) ([]models.Quote, error) {
				return models.CloneQuotes(batch), nil
			},
			PushQuoteFunc: func(ctx context.Context, q models.Quote) bool {
				return true
			},
		},
		notifier: &notify.NotifierMock{
			NotifyFunc: func(ctx context.Context, n notify.Notification) {},
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	rec := reconcile.New(func() time.Time { return passTime }, logger)
	f.scheduler = NewScheduler(f.gateway, st, rec, mem, f.notifier, logger)
	return f
}

func remoteBatch(n int) []models.Quote {
	out := make([]models.Quote, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Quote{
			ID:       fmt.Sprintf("server-%d", i),
			Text:     fmt.Sprintf("remote %d", i),
			Category: "Server-1",
		})
	}
	return out
}

func TestNewScheduler_Defaults(t *testing.T) {
	s := NewScheduler(&api.GatewayMock{}, nil, nil, nil, nil, nil)
	assert.NotNil(t, s.logger)
	assert.NotNil(t, s.notifier)
	assert.NotNil(t, s.reconciler)
}

func TestRunPass_AddsRecordsAndNotifies(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []models.Quote{}, remoteBatch(3))

	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 3, result.Outcome.Added)
	assert.Equal(t, 0, result.Outcome.Conflicts)
	assert.Equal(t, 3, f.store.Len())

	calls := f.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	n := calls[0].N
	assert.Equal(t, notify.KindSyncCompleted, n.Kind)
	assert.Equal(t, notify.StatusOK, n.Status)
	assert.Equal(t, 3, n.Added)
	assert.Equal(t, passTime, n.Time)

	ts, err := f.mem.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, passTime.Unix(), ts)
}

func TestRunPass_SecondPassIsSilent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []models.Quote{}, remoteBatch(2))

	_, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)

	assert.False(t, result.Outcome.Changed())
	assert.Len(t, f.notifier.NotifyCalls(), 1)
}

func TestRunPass_ConflictNotified(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []models.Quote{{ID: "server-1", Text: "old", Category: "Server-1"}}, remoteBatch(1))

	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Outcome.Conflicts)

	calls := f.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, 1, calls[0].N.Conflicts)
}

func TestRunPass_RemoteUnavailable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)
	before := f.store.Get("")

	f.gateway.FetchBatchFunc = func(ctx context.Context) ([]models.Quote, error) {
		return []models.Quote{}, fmt.Errorf("%w: connection refused", api.ErrRemoteUnavailable)
	}

	result, err := f.scheduler.RunPass(ctx)
	assert.ErrorIs(t, err, api.ErrRemoteUnavailable)
	require.NotNil(t, result)
	assert.False(t, result.Outcome.Changed())
	assert.Equal(t, before, f.store.Get(""))

	// Только уведомление об ошибке, без счётчиков
	calls := f.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	n := calls[0].N
	assert.Equal(t, notify.StatusFailed, n.Status)
	assert.Equal(t, "sync", n.Operation)
	assert.Zero(t, n.Added)
	assert.Zero(t, n.Conflicts)

	ts, err := f.mem.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)
}

func TestRunPass_EmptyBatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, []models.Quote{})

	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Fetched)
	assert.Empty(t, f.notifier.NotifyCalls())
	assert.Equal(t, 2, f.store.Len())
}

func TestRunPass_StoreGrewWithoutChanges(t *testing.T) {
	ctx := context.Background()
	batch := remoteBatch(1)
	f := newFixture(t, batch, batch)

	// Параллельная локальная вставка во время запроса к серверу
	f.gateway.FetchBatchFunc = func(ctx context.Context) ([]models.Quote, error) {
		_, err := f.store.InsertNew(ctx, "typed while syncing", "Mine")
		require.NoError(t, err)
		return models.CloneQuotes(batch), nil
	}

	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	assert.False(t, result.Outcome.Changed())
	assert.Equal(t, 1, result.Grew)

	calls := f.notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, notify.KindRecordsAdded, calls[0].N.Kind)
	assert.Equal(t, 1, calls[0].N.Count)

	// Локальная вставка не перезаписана проходом
	local := f.store.Get("Mine")
	require.Len(t, local, 1)
	assert.True(t, local[0].IsLocal())
}

func TestRunPass_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	fail := false
	qs := &storage.QuoteStorageMock{
		LoadQuotesFunc: mem.LoadQuotes,
		SaveQuotesFunc: func(ctx context.Context, quotes []models.Quote) error {
			if fail {
				return errors.New("disk full")
			}
			return mem.SaveQuotes(ctx, quotes)
		},
		GetCategoryFilterFunc: mem.GetCategoryFilter,
	}
	st, err := store.New(ctx, qs, nil, nil)
	require.NoError(t, err)

	notifier := &notify.NotifierMock{NotifyFunc: func(ctx context.Context, n notify.Notification) {}}
	gateway := &api.GatewayMock{
		FetchBatchFunc: func(ctx context.Context) ([]models.Quote, error) {
			return remoteBatch(2), nil
		},
	}
	s := NewScheduler(gateway, st, nil, mem, notifier, nil)

	fail = true
	result, err := s.RunPass(ctx)
	assert.ErrorIs(t, err, store.ErrPersistence)
	assert.Zero(t, result.Outcome.Added)
	assert.Equal(t, 2, st.Len())

	calls := notifier.NotifyCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, notify.StatusFailed, calls[0].N.Status)
}

func TestRunPass_PushesPendingQuotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, []models.Quote{
		{ID: "local-1", Text: "ok", Category: "A"},
		{ID: "local-2", Text: "rejected", Category: "A"},
	}, nil)

	require.NoError(t, f.mem.AddPendingPush(ctx, "local-1"))
	require.NoError(t, f.mem.AddPendingPush(ctx, "local-2"))
	require.NoError(t, f.mem.AddPendingPush(ctx, "local-404"))

	f.gateway.PushQuoteFunc = func(ctx context.Context, q models.Quote) bool {
		return q.ID == "local-1"
	}

	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pushed)
	assert.Equal(t, 1, result.PushFailed)

	// Отправка происходит до запроса к серверу
	require.Len(t, f.gateway.PushQuoteCalls(), 2)
	assert.Equal(t, "local-1", f.gateway.PushQuoteCalls()[0].Q.ID)

	pending, err := f.mem.GetPendingPushes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"local-2"}, pending)
}

func TestRunPass_InFlightGuard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.gateway.FetchBatchFunc = func(ctx context.Context) ([]models.Quote, error) {
		close(entered)
		<-release
		return remoteBatch(1), nil
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := f.scheduler.RunPass(ctx)
		errCh <- err
	}()

	<-entered
	result, err := f.scheduler.RunPass(ctx)
	assert.ErrorIs(t, err, ErrPassInFlight)
	assert.Nil(t, result)

	close(release)
	require.NoError(t, <-errCh)
	assert.Equal(t, 3, f.store.Len())
}

func TestStart_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)

	assert.ErrorIs(t, f.scheduler.Start(ctx, 0), ErrInvalidInterval)
	assert.ErrorIs(t, f.scheduler.Start(ctx, -time.Second), ErrInvalidInterval)

	require.NoError(t, f.scheduler.Start(ctx, time.Hour))
	assert.ErrorIs(t, f.scheduler.Start(ctx, time.Hour), ErrAlreadyRunning)
	require.NoError(t, f.scheduler.Stop(ctx))

	// Повторный Stop ничего не делает
	require.NoError(t, f.scheduler.Stop(ctx))
}

func TestStart_ImmediatePassThenTicks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, remoteBatch(1))

	var fetches atomic.Int32
	f.gateway.FetchBatchFunc = func(ctx context.Context) ([]models.Quote, error) {
		fetches.Add(1)
		return remoteBatch(1), nil
	}

	require.NoError(t, f.scheduler.Start(ctx, 20*time.Millisecond))

	// Немедленный проход, затем проходы по тикам
	require.Eventually(t, func() bool { return fetches.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, f.scheduler.Stop(ctx))

	stopped := fetches.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, stopped, fetches.Load(), "no passes after Stop")
}

func TestStart_PassesNeverOverlap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)

	var (
		active  atomic.Int32
		maxSeen atomic.Int32
		total   atomic.Int32
	)
	f.gateway.FetchBatchFunc = func(ctx context.Context) ([]models.Quote, error) {
		n := active.Add(1)
		defer active.Add(-1)
		if n > maxSeen.Load() {
			maxSeen.Store(n)
		}
		total.Add(1)
		// Проход медленнее интервала тикера
		time.Sleep(30 * time.Millisecond)
		return remoteBatch(2), nil
	}

	require.NoError(t, f.scheduler.Start(ctx, 5*time.Millisecond))
	require.Eventually(t, func() bool { return total.Load() >= 3 }, 3*time.Second, 5*time.Millisecond)
	require.NoError(t, f.scheduler.Stop(ctx))

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestPass_ReportsSkippedTicks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil, nil)

	// Тики, пришедшие во время прохода, теряются и учитываются следующим проходом
	f.scheduler.inFlight.Store(true)
	f.scheduler.tick(ctx)
	f.scheduler.tick(ctx)
	f.scheduler.inFlight.Store(false)

	result, err := f.scheduler.RunPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, f.gateway.FetchBatchCalls(), 1)
}

func TestStop_WaitsForInFlightPass(t *testing.T) {
	f := newFixture(t, nil, nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	var finished atomic.Bool
	f.gateway.FetchBatchFunc = func(ctx context.Context) ([]models.Quote, error) {
		once.Do(func() { close(entered) })
		<-release
		// Контекст прохода не отменяется при Stop
		assert.NoError(t, ctx.Err())
		finished.Store(true)
		return remoteBatch(1), nil
	}

	require.NoError(t, f.scheduler.Start(context.Background(), time.Hour))
	<-entered

	// Stop ограничен контекстом, пока проход висит
	shortCtx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.scheduler.Stop(shortCtx), context.DeadlineExceeded)

	close(release)
	require.Eventually(t, finished.Load, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return f.store.Len() == 3 }, time.Second, 5*time.Millisecond)
}
