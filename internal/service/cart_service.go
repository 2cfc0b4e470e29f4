package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartdeal/internal/catalog"
	"smartdeal/internal/domain"
	"smartdeal/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAlreadyInCart = errors.New("product already in cart")
	ErrUnknownStore  = errors.New("selected store must be Amazon or Flipkart")
)

// CartService manages a user's cart: reconciled views over the live
// catalog, guarded adds, idempotent removals, and the move-from-wishlist
// flow.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) ([]catalog.CartLine, float64, error)
	AddToCart(ctx context.Context, userID, productID uuid.UUID, selectedStore string) (*domain.CartItem, error)
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error
	MoveToCart(ctx context.Context, userID, productID uuid.UUID, selectedStore string) (*domain.CartItem, error)
}

type cartService struct {
	cartRepo     repository.CartRepository
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(
	cartRepo repository.CartRepository,
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) CartService {
	return &cartService{
		cartRepo:     cartRepo,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetCart joins the user's cart items against the current catalog snapshot.
// Items whose product has left the catalog are dropped, not errored on.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) ([]catalog.CartLine, float64, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	lines, total := catalog.ReconcileCart(products, items)
	return lines, total, nil
}

// AddToCart runs the uniqueness guard over the current cart snapshot before
// dispatching the insert. The database's unique pair constraint backstops
// the race between snapshot and insert.
func (s *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, selectedStore string) (*domain.CartItem, error) {
	if selectedStore != domain.StoreAmazon && selectedStore != domain.StoreFlipkart {
		return nil, ErrUnknownStore
	}

	existing, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart snapshot: %w", err)
	}

	if err := catalog.CanAdd(catalog.RefsFromCart(existing), userID, productID); err != nil {
		return nil, ErrAlreadyInCart
	}

	item := &domain.CartItem{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     productID,
		SelectedStore: selectedStore,
		Timestamp:     time.Now().UTC(),
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrCartItemAlreadyExists) {
			return nil, ErrAlreadyInCart
		}
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return item, nil
}

// RemoveFromCart deletes the user's cart entry for a product. Removing an
// absent entry succeeds.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// MoveToCart is a two-step sequence: remove from wishlist, then a guarded
// add to cart. The steps are not atomic. If the add fails after the remove
// succeeded, the item is gone from the wishlist and absent from the cart;
// the add's error is returned as-is and no compensating re-add is
// attempted.
func (s *cartService) MoveToCart(ctx context.Context, userID, productID uuid.UUID, selectedStore string) (*domain.CartItem, error) {
	if err := s.wishlistRepo.Delete(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("failed to remove from wishlist: %w", err)
	}

	return s.AddToCart(ctx, userID, productID, selectedStore)
}
