package idempotency

import (
	"context"
	"fmt"
	"time"

	"minimart-backend/internal/ports"

	"github.com/redis/go-redis/v9"
)

// keyTTL bounds how long a recorded envelope is replayed. Gateway resources
// outlive this window; the guard only has to absorb near-term repeats.
const keyTTL = 30 * 24 * time.Hour

// RedisStore implements IdempotencyStore on a Redis key space.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed idempotency store.
func NewRedisStore(client *redis.Client) ports.IdempotencyStore {
	return &RedisStore{
		client: client,
		prefix: "idem:",
	}
}

// Get returns the stored envelope body for key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	return val, true, nil
}

// Set stores the envelope body for key.
func (s *RedisStore) Set(ctx context.Context, key string, body []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, body, keyTTL).Err(); err != nil {
		return fmt.Errorf("failed to write idempotency key: %w", err)
	}
	return nil
}
