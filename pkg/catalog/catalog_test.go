package catalog

import "testing"

func TestCategoriesFirstSeenOrder(t *testing.T) {
	s := NewStore(Default())

	got := s.Categories()
	want := []string{"all", "Масла", "Фильтры", "Тормоза", "Зажигание", "Электрика", "Жидкости", "Стеклоочистители"}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category[%d]: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFilteredAll(t *testing.T) {
	s := NewStore(Default())
	if got := s.Filtered(); len(got) != 12 {
		t.Fatalf("expected all 12 products, got %d", len(got))
	}
}

func TestFilteredByCategory(t *testing.T) {
	s := NewStore(Default())
	s.SetCategory("Тормоза")

	got := s.Filtered()
	if len(got) != 3 {
		t.Fatalf("expected 3 products, got %d", len(got))
	}
	// Catalog order must be preserved.
	if got[0].ID != 4 || got[1].ID != 5 || got[2].ID != 6 {
		t.Fatalf("unexpected order: %d %d %d", got[0].ID, got[1].ID, got[2].ID)
	}
	for _, p := range got {
		if p.Category != "Тормоза" {
			t.Fatalf("product %d has category %q", p.ID, p.Category)
		}
	}
}

func TestFilteredUnknownCategory(t *testing.T) {
	s := NewStore(Default())
	s.SetCategory("Кузов")
	if got := s.Filtered(); len(got) != 0 {
		t.Fatalf("expected empty view, got %d products", len(got))
	}
}

func TestFilteredRecomputed(t *testing.T) {
	s := NewStore(Default())
	s.SetCategory("Масла")
	if got := s.Filtered(); len(got) != 1 {
		t.Fatalf("expected 1 product, got %d", len(got))
	}
	s.SetCategory("all")
	if got := s.Filtered(); len(got) != 12 {
		t.Fatalf("expected 12 products after reset, got %d", len(got))
	}
}

func TestFind(t *testing.T) {
	s := NewStore(Default())
	p, ok := s.Find(4)
	if !ok {
		t.Fatal("expected to find product 4")
	}
	if p.Price != 3200 {
		t.Fatalf("expected price 3200, got %d", p.Price)
	}
	if _, ok := s.Find(99); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestStoreCopiesInput(t *testing.T) {
	products := Default()
	s := NewStore(products)
	products[0].Price = 1

	p, _ := s.Find(1)
	if p.Price != 2500 {
		t.Fatalf("catalog mutated through input slice: price %d", p.Price)
	}
}
