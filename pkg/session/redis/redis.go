// Package redis implements a redis-backed session store with TTL
// expiry.
package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TTL is how long a session lives without being recreated.
const TTL = time.Hour

// Store keeps session ids under session:<id> keys.
type Store struct {
	client *redis.Client
}

// New creates a redis-backed store.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Create registers a fresh session id with the configured TTL.
func (s *Store) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, "session:"+id, time.Now().UTC().Format(time.RFC3339), TTL).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Valid reports whether the id still exists in redis.
func (s *Store) Valid(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, "session:"+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
