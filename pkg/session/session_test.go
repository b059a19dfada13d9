package session

import (
	"context"
	"testing"

	"avtomaster/pkg/cart"
	"avtomaster/pkg/catalog"
	"avtomaster/pkg/session/memory"
)

func newManager(store Store) *Manager {
	return NewManager(store, func() *State {
		return &State{
			Cart:    cart.NewStore(nil),
			Catalog: catalog.NewStore(catalog.Default()),
		}
	})
}

func TestStartAndGet(t *testing.T) {
	ctx := context.Background()
	m := newManager(memory.New())

	id, st, err := m.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if st.Cart == nil || st.Catalog == nil {
		t.Fatal("state not initialized")
	}

	got, err := m.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != st {
		t.Fatal("expected the same state instance")
	}
}

func TestStatesAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := newManager(memory.New())

	_, a, err := m.Start(ctx)
	if err != nil {
		t.Fatalf("start a: %v", err)
	}
	_, b, err := m.Start(ctx)
	if err != nil {
		t.Fatalf("start b: %v", err)
	}

	p, _ := a.Catalog.Find(1)
	a.Cart.Add(ctx, p)
	a.Catalog.SetCategory("Тормоза")

	if b.Cart.TotalItems() != 0 {
		t.Fatal("cart leaked between sessions")
	}
	if b.Catalog.Category() != catalog.AllCategories {
		t.Fatal("filter leaked between sessions")
	}
}

func TestGetUnknownSession(t *testing.T) {
	ctx := context.Background()
	m := newManager(memory.New())

	if _, err := m.Get(ctx, "nope"); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestExpiredSessionEvicted(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	m := newManager(store)

	id, _, err := m.Start(ctx)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	store.Expire(id)

	if _, err := m.Get(ctx, id); err != ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("expected state evicted, %d left", m.Len())
	}
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	m := newManager(store)

	keep, _, _ := m.Start(ctx)
	drop, _, _ := m.Start(ctx)
	store.Expire(drop)

	m.Sweep(ctx)

	if m.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", m.Len())
	}
	if _, err := m.Get(ctx, keep); err != nil {
		t.Fatalf("live session swept: %v", err)
	}
}
