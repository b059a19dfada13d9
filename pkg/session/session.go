// Package session ties a visitor's cookie to the in-memory state the
// visitor owns: a cart and a catalog view with its category filter.
package session

import (
	"context"
	"errors"
	"sync"

	"avtomaster/pkg/cart"
	"avtomaster/pkg/catalog"
)

// ErrNoSession indicates an unknown or expired session id.
var ErrNoSession = errors.New("session not found")

// Store defines behavior for tracking live session ids.
type Store interface {
	Create(ctx context.Context) (string, error)
	Valid(ctx context.Context, id string) (bool, error)
}

// State is everything a single visitor owns. Each store has exactly
// one logical mutator: the visitor the session belongs to.
type State struct {
	Cart    *cart.Store
	Catalog *catalog.Store
}

// Manager maps session ids to their State. State lives only in this
// process; the Store decides which ids are still alive.
type Manager struct {
	store    Store
	newState func() *State

	mu     sync.Mutex
	states map[string]*State
}

// NewManager creates a Manager that builds fresh per-visitor state
// with newState.
func NewManager(store Store, newState func() *State) *Manager {
	return &Manager{
		store:    store,
		newState: newState,
		states:   make(map[string]*State),
	}
}

// Start registers a new session and returns its id and state.
func (m *Manager) Start(ctx context.Context) (string, *State, error) {
	id, err := m.store.Create(ctx)
	if err != nil {
		return "", nil, err
	}
	st := m.newState()
	m.mu.Lock()
	m.states[id] = st
	m.mu.Unlock()
	return id, st, nil
}

// Get returns the state for a live session id. Expired ids are evicted
// and reported as ErrNoSession. A live id without local state (the
// store may outlive the process) gets fresh state.
func (m *Manager) Get(ctx context.Context, id string) (*State, error) {
	ok, err := m.store.Valid(ctx, id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !ok {
		delete(m.states, id)
		return nil, ErrNoSession
	}
	st, found := m.states[id]
	if !found {
		st = m.newState()
		m.states[id] = st
	}
	return st, nil
}

// Sweep drops local state for sessions the store no longer considers
// alive. Called periodically to bound memory.
func (m *Manager) Sweep(ctx context.Context) {
	m.mu.Lock()
	ids := make([]string, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		ok, err := m.store.Valid(ctx, id)
		if err != nil {
			continue
		}
		if !ok {
			m.mu.Lock()
			delete(m.states, id)
			m.mu.Unlock()
		}
	}
}

// Len reports how many sessions hold local state.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.states)
}
