package catalog

import (
	"context"
	"errors"
)

var ErrEmptyCatalog = errors.New("catalog is empty")

// Product is immutable once loaded. Price is in whole currency units.
type Product struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

type Store interface {
	Ping(ctx context.Context) error
	ListSortedByID(ctx context.Context) ([]Product, error)
}

// Seed is the fixed storefront catalog.
func Seed() []Product {
	return []Product{
		{ID: 1, Name: "Ruby Necklace", Price: 1200, Image: "/products/ruby-necklace.jpg"},
		{ID: 2, Name: "Sapphire Ring", Price: 980, Image: "/products/sapphire-ring.jpg"},
		{ID: 3, Name: "Emerald Earrings", Price: 1500, Image: "/products/emerald-earrings.jpg"},
	}
}
