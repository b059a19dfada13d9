// Package memory implements an in-memory session store.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store tracks session ids in a mutex-guarded set.
type Store struct {
	mu  sync.RWMutex
	ids map[string]bool
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{ids: make(map[string]bool)}
}

// Create registers and returns a fresh session id.
func (s *Store) Create(ctx context.Context) (string, error) {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = true
	return id, nil
}

// Valid reports whether the id is a live session.
func (s *Store) Valid(ctx context.Context, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[id], nil
}

// Expire removes the id. Used by tests to simulate TTL expiry.
func (s *Store) Expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}
