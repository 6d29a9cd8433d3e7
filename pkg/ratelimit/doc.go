// Package ratelimit implements fixed window rate limiting with pluggable
// storage backends and optional HTTP middleware.
//
// A FixedWindow limiter counts requests per key inside a bounded time window.
// The first request for a key (or the first after the window elapses) starts
// a fresh window with a count of one; every further request increments the
// counter, including rejected ones, so a client hammering past the limit
// keeps the window alive until it naturally expires. Reset deletes a key's
// state outright.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.New(store, 5, time.Minute)
//	if err != nil {
//	    // invalid configuration
//	}
//
//	res, err := limiter.Allow(ctx, clientIP)
//	if err == nil && !res.Allowed {
//	    // throttle: res.RetryAfter() says how long to wait
//	}
//
// Callers instantiate one limiter per logical throttling domain (login,
// password reset, ...) rather than sharing a process-wide singleton.
//
// # Storage
//
// State lives behind the Store interface. MemoryStore is a mutex-guarded
// in-process map with background cleanup of expired windows, suitable for a
// single node. RedisStore shares windows across processes using atomic
// INCR + PEXPIRE.
//
// # HTTP middleware
//
// Middleware enforces a limiter on net/http handlers, sets the standard
// X-RateLimit-* headers and fails open on store errors so a storage outage
// never takes the service down with it.
package ratelimit
