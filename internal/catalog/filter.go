package catalog

import "strings"

// Visible returns the products whose name contains query, compared
// case-insensitively, in their original order. An empty query matches
// everything.
func Visible(products []Product, query string) []Product {
	needle := strings.ToLower(query)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}
