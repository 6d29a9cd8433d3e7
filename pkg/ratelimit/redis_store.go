package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares fixed window counters across processes using Redis.
// Incr relies on INCR + PEXPIRE, so counters are atomic per key.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces all keys written by the store. Defaults to
// "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		s.keyPrefix = prefix
	}
}

// NewRedisStore creates a Redis-backed fixed window store.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}

	s := &RedisStore{
		client:    client,
		keyPrefix: "ratelimit:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Incr advances the counter for key. The window TTL is attached when the key
// is first created; Redis expiry then handles the reset for us.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	rkey := s.keyPrefix + key

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	ttl := pipe.PTTL(ctx, rkey)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	count := incr.Val()
	now := time.Now()

	// A key without a TTL is freshly created (or leaked by a crashed
	// expire); attach the window either way.
	if ttl.Val() <= 0 {
		if err := s.client.PExpire(ctx, rkey, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		return count, now.Add(window), nil
	}

	return count, now.Add(ttl.Val()), nil
}

// Get returns the current count and expiry without incrementing.
func (s *RedisStore) Get(ctx context.Context, key string) (int64, time.Time, error) {
	rkey := s.keyPrefix + key

	pipe := s.client.TxPipeline()
	get := pipe.Get(ctx, rkey)
	ttl := pipe.PTTL(ctx, rkey)
	if _, err := pipe.Exec(ctx); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, time.Time{}, nil
		}
		return 0, time.Time{}, err
	}

	count, err := get.Int64()
	if err != nil {
		return 0, time.Time{}, nil
	}
	if ttl.Val() <= 0 {
		return 0, time.Time{}, nil
	}

	return count, time.Now().Add(ttl.Val()), nil
}

// Delete removes the key's window state.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.keyPrefix+key).Err()
}
