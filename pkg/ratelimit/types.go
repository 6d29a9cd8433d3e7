package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request may proceed.
	Allowed bool

	// Limit is the maximum number of requests allowed per window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the current window expires.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Store is the storage backend for fixed window counters. Implementations
// must perform Incr atomically: create the window on first sight, reset it
// when expired, increment it otherwise.
type Store interface {
	// Incr advances the counter for key inside its current window and
	// returns the post-increment count together with the window expiry.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)

	// Get returns the current count and window expiry without incrementing.
	// A missing or expired key reports a zero count.
	Get(ctx context.Context, key string) (count int64, resetAt time.Time, err error)

	// Delete removes the key's window state outright.
	Delete(ctx context.Context, key string) error
}
