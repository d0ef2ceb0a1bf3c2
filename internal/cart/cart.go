// Package cart is the append-only cart ledger. A cart is an ordered list of
// products; adding the same product twice yields two entries.
package cart

import "GemsByMike/internal/catalog"

type Cart []catalog.Product

// Line is one cart entry together with its insertion position.
type Line struct {
	Index   int             `json:"index"`
	Product catalog.Product `json:"product"`
}

// Add returns a new cart with p appended. c is left untouched.
func Add(c Cart, p catalog.Product) Cart {
	out := make(Cart, len(c), len(c)+1)
	copy(out, c)
	return append(out, p)
}

func Total(c Cart) int64 {
	var total int64
	for _, p := range c {
		total += p.Price
	}
	return total
}

func Count(c Cart) int { return len(c) }

func Lines(c Cart) []Line {
	out := make([]Line, len(c))
	for i, p := range c {
		out[i] = Line{Index: i, Product: p}
	}
	return out
}
