package domain

import (
	"time"

	"github.com/google/uuid"
)

// Store names for the two retailers every product is quoted on.
const (
	StoreAmazon   = "Amazon"
	StoreFlipkart = "Flipkart"
)

// Product represents a catalog entry with one price quote per retailer.
// Products are read-only once fetched; the catalog snapshot is replaced
// wholesale on refresh.
type Product struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	Name           string            `json:"name" db:"name"`
	Brand          string            `json:"brand" db:"brand"`
	Image          string            `json:"image" db:"image"`
	RAM            string            `json:"ram" db:"ram"`
	Storage        string            `json:"storage" db:"storage"`
	Processor      string            `json:"processor" db:"processor"`
	Camera         string            `json:"camera" db:"camera"`
	Display        string            `json:"display" db:"display"`
	Battery        string            `json:"battery" db:"battery"`
	AmazonPrice    float64           `json:"amazonPrice" db:"amazon_price"`
	AmazonURL      string            `json:"amazonUrl" db:"amazon_url"`
	FlipkartPrice  float64           `json:"flipkartPrice" db:"flipkart_price"`
	FlipkartURL    string            `json:"flipkartUrl" db:"flipkart_url"`
	Rating         float64           `json:"rating" db:"rating"`
	Specifications map[string]string `json:"specifications" db:"specifications"`
	Timestamp      time.Time         `json:"timestamp" db:"timestamp"`
}

// StorePrice returns the current quote for the given store name.
// Any store other than Amazon resolves to Flipkart.
func (p Product) StorePrice(store string) float64 {
	if store == StoreAmazon {
		return p.AmazonPrice
	}
	return p.FlipkartPrice
}

// StoreURL returns the purchase link for the given store name.
func (p Product) StoreURL(store string) string {
	if store == StoreAmazon {
		return p.AmazonURL
	}
	return p.FlipkartURL
}
