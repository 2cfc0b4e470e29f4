package catalog

import (
	"github.com/google/uuid"

	"smartdeal/internal/domain"
)

// CartLine joins a cart item with its live product snapshot. SelectedPrice
// is the current quote of the store locked in at add time, which is not
// necessarily the best price anymore.
type CartLine struct {
	domain.Product
	CartID        uuid.UUID `json:"cartId"`
	SelectedStore string    `json:"selectedStore"`
	SelectedPrice float64   `json:"selectedPrice"`
	SelectedURL   string    `json:"selectedUrl"`
}

// WishlistLine joins a wishlist item with its live product snapshot.
type WishlistLine struct {
	domain.Product
	WishlistID uuid.UUID `json:"wishlistId"`
}

// ReconcileCart joins cart items against the catalog by product ID and sums
// the locked-in store prices. Items whose product has left the catalog are
// silently dropped; during catalog churn that is expected, not an error.
func ReconcileCart(products []domain.Product, items []domain.CartItem) ([]CartLine, float64) {
	byID := indexByID(products)

	lines := make([]CartLine, 0, len(items))
	var total float64
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		line := CartLine{
			Product:       p,
			CartID:        item.ID,
			SelectedStore: item.SelectedStore,
			SelectedPrice: p.StorePrice(item.SelectedStore),
			SelectedURL:   p.StoreURL(item.SelectedStore),
		}
		lines = append(lines, line)
		total += line.SelectedPrice
	}

	return lines, total
}

// ReconcileWishlist joins wishlist items against the catalog by product ID,
// dropping dangling references the same way ReconcileCart does.
func ReconcileWishlist(products []domain.Product, items []domain.WishlistItem) []WishlistLine {
	byID := indexByID(products)

	lines := make([]WishlistLine, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, WishlistLine{Product: p, WishlistID: item.ID})
	}

	return lines
}

func indexByID(products []domain.Product) map[uuid.UUID]domain.Product {
	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID
}
