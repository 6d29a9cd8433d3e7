package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIncr(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	current := time.Now()
	store.now = func() time.Time { return current }

	count, resetAt, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, current.Add(time.Minute), resetAt)

	count, _, err = store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Window elapses: counter restarts at one.
	current = current.Add(time.Minute)
	count, resetAt, err = store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, current.Add(time.Minute), resetAt)
}

func TestMemoryStoreGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	current := time.Now()
	store.now = func() time.Time { return current }

	count, _, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, _, err = store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	count, _, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	current = current.Add(2 * time.Minute)
	count, _, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	_, _, err := store.Incr(ctx, "k", time.Minute)
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "k"))

	count, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryStoreRemoveExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	current := time.Now()
	store.now = func() time.Time { return current }

	_, _, err := store.Incr(ctx, "old", time.Minute)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)
	_, _, err = store.Incr(ctx, "fresh", time.Minute)
	require.NoError(t, err)

	store.removeExpired()

	store.mu.Lock()
	_, hasOld := store.entries["old"]
	_, hasFresh := store.entries["fresh"]
	store.mu.Unlock()

	assert.False(t, hasOld)
	assert.True(t, hasFresh)
}

func TestMemoryStoreConcurrentIncr(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	const goroutines = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_, _, _ = store.Incr(ctx, "shared", time.Minute)
		}()
	}
	wg.Wait()

	count, _, err := store.Get(ctx, "shared")
	require.NoError(t, err)
	assert.Equal(t, int64(goroutines), count)
}

func TestMemoryStoreCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
