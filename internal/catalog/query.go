package catalog

import (
	"sort"

	"smartdeal/internal/domain"
)

// SortMode selects the ordering of a query result. The zero value keeps
// catalog insertion order.
type SortMode string

const (
	SortDefault    SortMode = "default"
	SortPriceAsc   SortMode = "price-low"
	SortPriceDesc  SortMode = "price-high"
	SortRatingDesc SortMode = "rating"
	SortNewest     SortMode = "newest"
)

// ParseSortMode maps a wire value to a SortMode, falling back to the
// default order for anything unrecognized.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNewest:
		return SortMode(s)
	default:
		return SortDefault
	}
}

// Query filters the catalog against the criteria and search text, then
// orders the survivors by the sort mode. The input slice is never mutated;
// the result is a fresh slice. Every sort is stable, so products with equal
// keys keep their catalog order. The full pipeline recomputes on each call.
func Query(products []domain.Product, c Criteria, search string, mode SortMode) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p, search) {
			result = append(result, p)
		}
	}

	switch mode {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return Compare(result[i]).Price < Compare(result[j]).Price
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return Compare(result[i]).Price > Compare(result[j]).Price
		})
	case SortRatingDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating > result[j].Rating
		})
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Timestamp.After(result[j].Timestamp)
		})
	}

	return result
}
