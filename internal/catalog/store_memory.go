package catalog

import (
	"context"
	"sort"
)

// MemStore holds a read-only product list. It is never written after
// construction, so no locking is needed.
type MemStore struct {
	byID map[int64]Product
}

func NewMemStore(products ...Product) *MemStore {
	if len(products) == 0 {
		products = Seed()
	}
	s := &MemStore{byID: make(map[int64]Product, len(products))}
	for _, p := range products {
		s.byID[p.ID] = p
	}
	return s
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListSortedByID(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
