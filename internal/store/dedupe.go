// Package store holds the persistence collaborators around the engine:
// idempotency dedup, lead records, and the command audit index.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupeKeyPrefix = "cmd:idem:"

// DedupeStore tracks idempotency keys so retried webhook deliveries are
// processed once.
type DedupeStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDedupeStore(client *redis.Client, ttl time.Duration) *DedupeStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DedupeStore{client: client, ttl: ttl}
}

// Seen marks the key and reports whether it had been seen before. The check
// and the mark are one atomic SETNX so two concurrent retries cannot both
// claim first delivery.
func (s *DedupeStore) Seen(ctx context.Context, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, dedupeKeyPrefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("dedupe check: %w", err)
	}
	return !ok, nil
}
