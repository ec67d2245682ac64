package faqstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAnswerTTL(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.SaveAnswer(context.Background(), "what is dengue", "a viral infection", 10*time.Millisecond))

	answer, ok, err := store.GetAnswer(context.Background(), "what is dengue")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "a viral infection", answer)

	time.Sleep(20 * time.Millisecond)

	_, ok, err = store.GetAnswer(context.Background(), "what is dengue")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.SaveAnswer(context.Background(), "key", "value", 0))

	_, ok, err := store.GetAnswer(context.Background(), "key")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryStoreTopQueriesOrdering(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.IncrementQuery(ctx, "what is dengue", "What is dengue?"))
	}
	require.NoError(t, store.IncrementQuery(ctx, "what is flu", "What is flu?"))

	items, err := store.TopQueries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "What is dengue?", items[0].Query)
	require.Equal(t, int64(3), items[0].Count)
}
