package ratelimit

import (
	"context"
	"time"
)

// FixedWindow is a fixed window rate limiter backed by a Store. It is safe
// for concurrent use as long as the store is.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// New creates a fixed window limiter allowing limit requests per window.
func New(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// NewFromConfig creates a fixed window limiter from a Config.
func NewFromConfig(store Store, cfg Config) (*FixedWindow, error) {
	return New(store, cfg.MaxRequests, cfg.Window)
}

// Allow records one request for key and reports whether it fits the limit.
// Rejected requests still count against the window, so the window is never
// reset early by over-limit traffic.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, resetAt, err := fw.store.Incr(ctx, key, fw.window)
	if err != nil {
		return nil, err
	}

	return fw.result(count, resetAt), nil
}

// Status reports the current state for key without recording a request.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, resetAt, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return &Result{Allowed: true, Limit: fw.limit, Remaining: fw.limit, ResetAt: time.Now().Add(fw.window)}, nil
	}

	return &Result{
		Allowed:   count < int64(fw.limit),
		Limit:     fw.limit,
		Remaining: remainingOf(fw.limit, count),
		ResetAt:   resetAt,
	}, nil
}

// Reset deletes the window state for key, restoring it to a clean slate
// regardless of elapsed time.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, key)
}

func (fw *FixedWindow) result(count int64, resetAt time.Time) *Result {
	return &Result{
		Allowed:   count <= int64(fw.limit),
		Limit:     fw.limit,
		Remaining: remainingOf(fw.limit, count),
		ResetAt:   resetAt,
	}
}

func remainingOf(limit int, count int64) int {
	remaining := limit - int(count)
	if remaining < 0 {
		return 0
	}
	return remaining
}
