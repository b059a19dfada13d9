// Package cart maintains a session-local shopping cart. Every
// operation is total: unknown ids are absorbed as no-ops and nothing
// in the mutation surface can fail.
package cart

import (
	"context"
	"sync"

	"avtomaster/pkg/catalog"
	"avtomaster/pkg/notify"
)

// Item is one cart line: a snapshot of the product taken when it was
// first added, plus a quantity that is always >= 1 while the line
// exists.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Store provides safe concurrent access to the cart's line items.
// Iteration order is insertion order; a product removed and re-added
// goes to the end.
type Store struct {
	mu       sync.Mutex
	items    []Item
	notifier notify.Notifier
}

// NewStore returns an empty cart. notifier may be nil to disable
// notifications.
func NewStore(notifier notify.Notifier) *Store {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Store{notifier: notifier}
}

// Add puts the product into the cart. A product already present gets
// its quantity incremented; its snapshotted fields are not refreshed.
// Exactly one notification is emitted per call.
func (s *Store) Add(ctx context.Context, p catalog.Product) Item {
	s.mu.Lock()
	var added Item
	if i := s.index(p.ID); i >= 0 {
		s.items[i].Quantity++
		added = s.items[i]
	} else {
		added = Item{Product: p, Quantity: 1}
		s.items = append(s.items, added)
	}
	s.mu.Unlock()

	s.notifier.Notify(ctx, notify.Notification{
		Title:       "Добавлено в корзину",
		Description: p.Name,
	})
	return added
}

// Remove deletes the line with the given product id; absent ids are a
// no-op.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

// UpdateQuantity sets the quantity of the line with the given id.
// A quantity <= 0 removes the line. Absent ids are a no-op: only Add
// creates lines.
func (s *Store) UpdateQuantity(id, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// TotalPrice returns the sum of price*quantity over all lines.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Price * it.Quantity
	}
	return total
}

// TotalItems returns the total unit count across all lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// index returns the position of the line with the given product id,
// or -1. Caller holds the lock.
func (s *Store) index(id int) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
