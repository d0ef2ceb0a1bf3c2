package catalog

import (
	"context"
	"fmt"
	"sort"
)

// Snapshot is the catalog as loaded at startup: ordered by ID and never
// mutated afterwards.
type Snapshot struct {
	products []Product
	byID     map[int64]int
}

// Load reads the full listing from s once.
func Load(ctx context.Context, s Store) (*Snapshot, error) {
	products, err := s.ListSortedByID(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	return NewSnapshot(products), nil
}

func NewSnapshot(products []Product) *Snapshot {
	sorted := make([]Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int64]int, len(sorted))
	for i, p := range sorted {
		byID[p.ID] = i
	}
	return &Snapshot{products: sorted, byID: byID}
}

// Products returns a copy of the ordered catalog.
func (s *Snapshot) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Snapshot) Get(id int64) (Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

func (s *Snapshot) Len() int { return len(s.products) }
