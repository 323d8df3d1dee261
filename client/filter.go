package client

import (
	"sort"
	"strings"
)

// Catalog filtering happens client-side over the page already fetched, the
// same way the browser clients do it: filters only see the currently loaded
// page, not the full catalog.

// FilterProducts returns the products matching a free-text query (over name,
// description and category, case-insensitive) and an optional exact category.
// Empty query and category match everything.
func FilterProducts(products []Product, query, category string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(p.Name + " " + p.Description + " " + p.Category)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// SortKey selects the ordering used by SortProducts.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
)

// SortProducts returns a sorted copy; an unknown key returns the slice as-is.
func SortProducts(products []Product, key SortKey) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}
