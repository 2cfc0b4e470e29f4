package catalog

import "smartdeal/internal/domain"

// Verdict is the best-price outcome for a product across both retailers.
type Verdict struct {
	Price float64 `json:"bestPrice"`
	Store string  `json:"bestStore"`
}

// Compare returns the lower of the two retailer quotes and the store that
// offered it. Amazon wins only on a strictly lower price; ties resolve to
// Flipkart.
func Compare(p domain.Product) Verdict {
	if p.AmazonPrice < p.FlipkartPrice {
		return Verdict{Price: p.AmazonPrice, Store: domain.StoreAmazon}
	}
	return Verdict{Price: p.FlipkartPrice, Store: domain.StoreFlipkart}
}
