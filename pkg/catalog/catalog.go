// Package catalog holds the product catalog and the active category filter.
package catalog

import "sync"

// AllCategories is the sentinel filter value that matches every product.
const AllCategories = "all"

// Product represents an item from the parts catalog. The catalog is
// read-only after load; Icon-like display fields stay out of the model.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	InStock  bool   `json:"inStock"`
}

// Store provides safe concurrent access to the catalog and the
// currently selected category filter.
type Store struct {
	mu       sync.RWMutex
	products []Product
	category string
}

// NewStore returns a Store over the given products with the filter set
// to AllCategories. The product slice is copied; ids are expected to be
// unique within the catalog.
func NewStore(products []Product) *Store {
	s := &Store{
		products: make([]Product, len(products)),
		category: AllCategories,
	}
	copy(s.products, products)
	return s
}

// Categories returns AllCategories followed by each distinct category
// in first-seen catalog order, each exactly once.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []string{AllCategories}
	seen := make(map[string]bool, len(s.products))
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// SetCategory selects the active filter. Any value is accepted; an
// unrecognized category simply yields an empty filtered view.
func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

// Category returns the active filter value.
func (s *Store) Category() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// Filtered derives the products matching the active filter, in catalog
// order. The view is recomputed on every call.
func (s *Store) Filtered() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if s.category == AllCategories || p.Category == s.category {
			out = append(out, p)
		}
	}
	return out
}

// Products returns the whole catalog in order.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Find looks a product up by id.
func (s *Store) Find(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
