package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/quotesync/internal/client/storage"
	"github.com/iudanet/quotesync/internal/models"
)

func TestLastQuote(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.GetLastQuote(ctx)
	assert.ErrorIs(t, err, storage.ErrLastQuoteNotFound)

	q := models.Quote{ID: "local-1", Text: "Stay hungry", Category: "Motivation"}
	require.NoError(t, store.SaveLastQuote(ctx, q))

	got, err := store.GetLastQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, q, *got)
}

func TestClearSession(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	require.NoError(t, store.SaveLastQuote(ctx, models.Quote{ID: "local-1", Text: "A", Category: "B"}))
	require.NoError(t, store.SaveCategoryFilter(ctx, "B"))

	require.NoError(t, store.ClearSession(ctx))

	_, err := store.GetLastQuote(ctx)
	assert.ErrorIs(t, err, storage.ErrLastQuoteNotFound)

	// Локальные данные не затрагиваются
	filter, err := store.GetCategoryFilter(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", filter)
}
