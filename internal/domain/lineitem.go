package domain

import (
	"time"

	"github.com/google/uuid"
)

// CartItem references a catalog product a user intends to buy from one
// fixed store. The store is chosen at add time and never mutated; changing
// it requires removal and re-addition. At most one cart item exists per
// (user, product) pair.
type CartItem struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"userId" db:"user_id"`
	ProductID     uuid.UUID `json:"productId" db:"product_id"`
	SelectedStore string    `json:"selectedStore" db:"selected_store"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

// WishlistItem references a catalog product a user saved for later.
// At most one wishlist item exists per (user, product) pair.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}
