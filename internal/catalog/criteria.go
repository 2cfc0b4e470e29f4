package catalog

import (
	"strings"

	"smartdeal/internal/domain"
)

// Full price range applied when no bounds are requested.
const (
	DefaultPriceLow  = 0
	DefaultPriceHigh = 200000
)

// Criteria is the facet filter set applied to the catalog. Facets combine
// with AND; values inside a facet combine with OR. An empty slice disables
// that facet entirely. Every field has an explicit default; construct with
// DefaultCriteria and override what the caller asked for.
type Criteria struct {
	Brands    []string
	PriceLow  float64
	PriceHigh float64
	RAM       []string
	Storage   []string
	MinRating float64
}

// DefaultCriteria returns criteria that pass every product: no brand, RAM
// or storage restriction, the full price range, and a zero rating floor.
func DefaultCriteria() Criteria {
	return Criteria{
		Brands:    nil,
		PriceLow:  DefaultPriceLow,
		PriceHigh: DefaultPriceHigh,
		RAM:       nil,
		Storage:   nil,
		MinRating: 0,
	}
}

// Matches reports whether the product passes every facet and the free-text
// search. Search matches name or brand case-insensitively; the price facet
// always applies and compares against the best price with inclusive bounds.
func (c Criteria) Matches(p domain.Product, search string) bool {
	if search != "" {
		needle := strings.ToLower(search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}

	if len(c.Brands) > 0 && !containsValue(c.Brands, p.Brand) {
		return false
	}

	if len(c.RAM) > 0 && !containsValue(c.RAM, p.RAM) {
		return false
	}

	if len(c.Storage) > 0 && !containsValue(c.Storage, p.Storage) {
		return false
	}

	best := Compare(p).Price
	if best < c.PriceLow || best > c.PriceHigh {
		return false
	}

	if p.Rating < c.MinRating {
		return false
	}

	return true
}

func containsValue(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
