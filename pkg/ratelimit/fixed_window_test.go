package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*FixedWindow, *MemoryStore, *time.Time) {
	t.Helper()

	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	current := time.Now()
	store.now = func() time.Time { return current }

	limiter, err := New(store, limit, window)
	require.NoError(t, err)

	return limiter, store, &current
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	_, err := New(nil, 3, time.Minute)
	assert.ErrorIs(t, err, ErrStoreRequired)

	_, err = New(store, 0, time.Minute)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = New(store, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestFixedWindowAllow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newTestLimiter(t, 3, time.Minute)

	for i := 1; i <= 3; i++ {
		res, err := limiter.Allow(ctx, "login:alice")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 3-i, res.Remaining)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := limiter.Allow(ctx, "login:alice")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestFixedWindowResetsAfterExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, current := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 4; i++ {
		_, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
	}

	*current = current.Add(time.Minute + time.Second)

	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestFixedWindowRejectedCallsKeepWindowAlive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, current := newTestLimiter(t, 2, time.Minute)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
	}

	// Halfway through the window the key is still throttled; over-limit
	// traffic does not restart the window early.
	*current = current.Add(30 * time.Second)

	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestFixedWindowReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newTestLimiter(t, 2, time.Minute)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "k")
		require.NoError(t, err)
	}

	require.NoError(t, limiter.Reset(ctx, "k"))

	res, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
}

func TestFixedWindowKeysAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newTestLimiter(t, 1, time.Minute)

	res, err := limiter.Allow(ctx, "a")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = limiter.Allow(ctx, "a")
	require.NoError(t, err)
	assert.False(t, res.Allowed)

	res, err = limiter.Allow(ctx, "b")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestFixedWindowStatusDoesNotConsume(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newTestLimiter(t, 3, time.Minute)

	_, err := limiter.Allow(ctx, "k")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		res, err := limiter.Status(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.Remaining)
	}

	res, err := limiter.Status(ctx, "untouched")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 3, res.Remaining)
}

func TestFixedWindowEmptyKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	limiter, _, _ := newTestLimiter(t, 3, time.Minute)

	_, err := limiter.Allow(ctx, "")
	assert.ErrorIs(t, err, ErrKeyRequired)

	_, err = limiter.Status(ctx, "")
	assert.ErrorIs(t, err, ErrKeyRequired)

	assert.ErrorIs(t, limiter.Reset(ctx, ""), ErrKeyRequired)
}

func TestResultRetryAfter(t *testing.T) {
	t.Parallel()

	allowed := &Result{Allowed: true, ResetAt: time.Now().Add(time.Minute)}
	assert.Equal(t, time.Duration(0), allowed.RetryAfter())

	rejected := &Result{Allowed: false, ResetAt: time.Now().Add(time.Minute)}
	assert.Greater(t, rejected.RetryAfter(), 50*time.Second)
}
