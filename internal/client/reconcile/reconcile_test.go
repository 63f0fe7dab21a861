package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/client/storage/memory"
	"github.com/iudanet/quotesync/internal/client/store"
	"github.com/iudanet/quotesync/internal/models"
)

var passTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newReconciler() *Reconciler {
	return New(func() time.Time { return passTime }, nil)
}

func newStore(t *testing.T, initial []models.Quote) *store.Store {
	t.Helper()
	ctx := context.Background()
	mem := memory.New()
	require.NoError(t, mem.SaveQuotes(ctx, initial))
	st, err := store.New(ctx, mem, nil, nil)
	require.NoError(t, err)
	return st
}

func remote(id, text, category string) models.Quote {
	return models.Quote{ID: id, Text: text, Category: category}
}

func ids(quotes []models.Quote) []string {
	out := make([]string, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, q.ID)
	}
	return out
}

func TestReconcile_NewRecords(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, []models.Quote{})

	batch := []models.Quote{
		remote("server-1", "a", "Server-1"),
		remote("server-2", "b", "Server-1"),
		remote("server-3", "c", "Server-2"),
	}

	outcome, err := newReconciler().Reconcile(ctx, st, batch)
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Added)
	assert.Equal(t, 0, outcome.Conflicts)
	assert.Equal(t, passTime, outcome.Timestamp)
	assert.Equal(t, batch, st.Get(""))
}

func TestReconcile_Conflict(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, []models.Quote{remote("server-1", "old", "Server-1")})

	outcome, err := newReconciler().Reconcile(ctx, st, []models.Quote{remote("server-1", "new", "Server-1")})
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Added)
	assert.Equal(t, 1, outcome.Conflicts)

	q, ok := st.Lookup("server-1")
	require.True(t, ok)
	assert.Equal(t, "new", q.Text)
}

func TestReconcile_CategoryOnlyChangeIsNotConflict(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, []models.Quote{remote("server-1", "same", "Server-1")})

	outcome, err := newReconciler().Reconcile(ctx, st, []models.Quote{remote("server-1", "same", "Server-9")})
	require.NoError(t, err)
	assert.False(t, outcome.Changed())

	// Перезапись всё равно происходит
	q, ok := st.Lookup("server-1")
	require.True(t, ok)
	assert.Equal(t, "Server-9", q.Category)
}

func TestReconcile_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, []models.Quote{remote("server-1", "old", "Server-1")})
	r := newReconciler()

	batch := []models.Quote{
		remote("server-1", "new", "Server-1"),
		remote("server-2", "b", "Server-1"),
	}

	first, err := r.Reconcile(ctx, st, batch)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Added)
	assert.Equal(t, 1, first.Conflicts)
	after := st.Get("")

	second, err := r.Reconcile(ctx, st, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 0, second.Conflicts)
	assert.Equal(t, after, st.Get(""))
}

func TestReconcile_OrderPreserved(t *testing.T) {
	ctx := context.Background()
	a := remote("server-1", "a", "Server-1")
	b := remote("server-2", "b", "Server-1")

	st1 := newStore(t, []models.Quote{})
	_, err := newReconciler().Reconcile(ctx, st1, []models.Quote{a, b})
	require.NoError(t, err)

	st2 := newStore(t, []models.Quote{})
	_, err = newReconciler().Reconcile(ctx, st2, []models.Quote{b, a})
	require.NoError(t, err)

	assert.Equal(t, []string{"server-1", "server-2"}, ids(st1.Get("")))
	assert.Equal(t, []string{"server-2", "server-1"}, ids(st2.Get("")))
	assert.ElementsMatch(t, st1.Get(""), st2.Get(""))
}

func TestReconcile_OverwriteKeepsPosition(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, []models.Quote{
		remote("server-1", "a", "Server-1"),
		remote("local-5", "mine", "Mine"),
		remote("server-2", "b", "Server-1"),
	})

	_, err := newReconciler().Reconcile(ctx, st, []models.Quote{
		remote("server-3", "c", "Server-2"),
		remote("server-1", "a2", "Server-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"server-1", "local-5", "server-2", "server-3"}, ids(st.Get("")))
}

func TestReconcile_LocalRecordsUntouched(t *testing.T) {
	ctx := context.Background()
	local := remote("local-1700000000000", "my quote", "Mine")
	st := newStore(t, []models.Quote{local})

	batch := []models.Quote{
		remote("server-1", "my quote", "Server-1"),
		remote("server-2", "other", "Server-1"),
	}
	for range 3 {
		_, err := newReconciler().Reconcile(ctx, st, batch)
		require.NoError(t, err)
	}

	q, ok := st.Lookup(local.ID)
	require.True(t, ok)
	assert.Equal(t, local, q)
	assert.Equal(t, local, st.Get("")[0])
}

func TestReconcile_EmptyBatchWritesNothing(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	mock := &storage.QuoteStorageMock{
		LoadQuotesFunc:        mem.LoadQuotes,
		SaveQuotesFunc:        mem.SaveQuotes,
		GetCategoryFilterFunc: mem.GetCategoryFilter,
	}
	st, err := store.New(ctx, mock, nil, nil)
	require.NoError(t, err)
	saves := len(mock.SaveQuotesCalls())

	for _, batch := range [][]models.Quote{nil, {}} {
		outcome, err := newReconciler().Reconcile(ctx, st, batch)
		require.NoError(t, err)
		assert.False(t, outcome.Changed())
	}
	assert.Len(t, mock.SaveQuotesCalls(), saves)
}

func TestReconcile_PersistenceFailure(t *testing.T) {
	ctx := context.Background()
	mem := memory.New()
	require.NoError(t, mem.SaveQuotes(ctx, []models.Quote{remote("server-1", "old", "Server-1")}))
	diskErr := errors.New("disk full")
	mock := &storage.QuoteStorageMock{
		LoadQuotesFunc: mem.LoadQuotes,
		SaveQuotesFunc: func(ctx context.Context, quotes []models.Quote) error {
			return diskErr
		},
		GetCategoryFilterFunc: mem.GetCategoryFilter,
	}
	st, err := store.New(ctx, mock, nil, nil)
	require.NoError(t, err)
	before := st.Get("")

	outcome, err := newReconciler().Reconcile(ctx, st, []models.Quote{
		remote("server-1", "new", "Server-1"),
		remote("server-2", "b", "Server-1"),
	})
	assert.ErrorIs(t, err, store.ErrPersistence)
	assert.ErrorIs(t, err, diskErr)
	assert.Equal(t, 0, outcome.Added)
	assert.Equal(t, 0, outcome.Conflicts)
	assert.Equal(t, before, st.Get(""))
}

func TestMerge_CountsWithinBatch(t *testing.T) {
	ctx := context.Background()
	st := newStore(t, []models.Quote{})

	// Один и тот же id дважды в батче: первый добавляется, второй конфликтует
	err := st.Apply(ctx, func(b *store.Batch) error {
		added, conflicts := Merge(b, []models.Quote{
			remote("server-1", "a", "Server-1"),
			remote("server-1", "b", "Server-1"),
		})
		assert.Equal(t, 1, added)
		assert.Equal(t, 1, conflicts)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, st.Len())
}
