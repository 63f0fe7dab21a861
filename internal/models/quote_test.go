package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote_Namespaces(t *testing.T) {
	tests := []struct {
		name       string
		quote      Quote
		wantLocal  bool
		wantRemote bool
	}{
		{
			name:      "local id",
			quote:     Quote{ID: "local-1700000000000"},
			wantLocal: true,
		},
		{
			name:       "remote id",
			quote:      Quote{ID: "server-42"},
			wantRemote: true,
		},
		{
			name:  "foreign id",
			quote: Quote{ID: "imported-7"},
		},
		{
			name:  "empty id",
			quote: Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLocal, tt.quote.IsLocal())
			assert.Equal(t, tt.wantRemote, tt.quote.IsRemote())
		})
	}
}

func TestQuote_MatchesCategory(t *testing.T) {
	q := Quote{ID: "local-1", Text: "t", Category: "Work"}

	assert.True(t, q.MatchesCategory(""))
	assert.True(t, q.MatchesCategory(CategoryAll))
	assert.True(t, q.MatchesCategory("Work"))
	assert.False(t, q.MatchesCategory("work"), "category match is case sensitive")
	assert.False(t, q.MatchesCategory("Inspiration"))
}

func TestSyncOutcome_Changed(t *testing.T) {
	assert.False(t, SyncOutcome{}.Changed())
	assert.True(t, SyncOutcome{Added: 1}.Changed())
	assert.True(t, SyncOutcome{Conflicts: 2}.Changed())
}

func TestDefaultQuotes(t *testing.T) {
	quotes := DefaultQuotes()

	assert.Len(t, quotes, 2)
	for _, q := range quotes {
		assert.True(t, q.IsLocal())
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Category)
	}

	// Каждый вызов возвращает новый срез
	quotes[0].Text = "mutated"
	assert.NotEqual(t, "mutated", DefaultQuotes()[0].Text)
}

func TestCloneQuotes(t *testing.T) {
	original := []Quote{{ID: "local-1", Text: "a", Category: "x"}}
	clone := CloneQuotes(original)

	clone[0].Text = "b"
	assert.Equal(t, "a", original[0].Text)

	assert.Empty(t, CloneQuotes(nil))
}
