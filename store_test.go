package main

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every WorksheetStore must share.
func exerciseStore(t *testing.T, s WorksheetStore) {
	t.Helper()
	ctx := context.Background()

	first := testWorksheet(t, 2, 3, "+")
	require.NoError(t, s.Save(ctx, first))
	require.NotEmpty(t, first.ID, "Save should assign an ID")
	require.False(t, first.CreatedAt.IsZero(), "Save should stamp the creation time")

	got, err := s.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Problems, got.Problems)
	assert.Equal(t, first.Config, got.Config)

	_, err = s.Get(ctx, "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)

	second := testWorksheet(t, 4, 4, "?")
	require.NoError(t, s.Save(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(list), 2)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i-1].CreatedAt.Before(list[i].CreatedAt), "expected worksheets sorted by descending creation time")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreEmptyList(t *testing.T) {
	list, err := NewMemoryStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	ws := testWorksheet(t, 1, 1, "*")

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cp := *ws
			s.Save(ctx, &cp)
			s.List(ctx)
			s.Get(ctx, cp.ID)
		}()
	}
	wg.Wait()

	list, _ := s.List(ctx)
	assert.Len(t, list, 100)
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := generateID()
		require.Len(t, id, 16)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
