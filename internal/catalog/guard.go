package catalog

import (
	"errors"

	"github.com/google/uuid"

	"smartdeal/internal/domain"
)

// ErrAlreadyExists signals that a (user, product) reference is already held
// and the add must be rejected before it reaches persistence.
var ErrAlreadyExists = errors.New("reference already exists for this user and product")

// Ref is the identifying pair of a cart or wishlist entry, as seen in a
// persistence snapshot.
type Ref struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// RefsFromCart projects cart items down to their identifying pairs.
func RefsFromCart(items []domain.CartItem) []Ref {
	refs := make([]Ref, 0, len(items))
	for _, item := range items {
		refs = append(refs, Ref{UserID: item.UserID, ProductID: item.ProductID})
	}
	return refs
}

// RefsFromWishlist projects wishlist items down to their identifying pairs.
func RefsFromWishlist(items []domain.WishlistItem) []Ref {
	refs := make([]Ref, 0, len(items))
	for _, item := range items {
		refs = append(refs, Ref{UserID: item.UserID, ProductID: item.ProductID})
	}
	return refs
}

// CanAdd decides whether adding (userID, productID) keeps the snapshot's
// uniqueness invariant. Returns ErrAlreadyExists when the pair is present,
// nil when the add may be dispatched. The decision runs here, ahead of the
// persistence call, so the storefront can show a specific conflict message
// instead of a generic failure. Removal needs no guard: removing an absent
// reference is a no-op success.
func CanAdd(existing []Ref, userID, productID uuid.UUID) error {
	for _, ref := range existing {
		if ref.UserID == userID && ref.ProductID == productID {
			return ErrAlreadyExists
		}
	}
	return nil
}
