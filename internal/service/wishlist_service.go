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
	ErrAlreadyInWishlist = errors.New("product already in wishlist")
)

// WishlistService manages a user's wishlist.
type WishlistService interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]catalog.WishlistLine, error)
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*domain.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates a new instance of WishlistService
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist joins the user's wishlist against the current catalog
// snapshot, dropping entries whose product is gone.
func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]catalog.WishlistLine, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist items: %w", err)
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}

	return catalog.ReconcileWishlist(products, items), nil
}

// AddToWishlist runs the uniqueness guard over the current wishlist
// snapshot before dispatching the insert.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*domain.WishlistItem, error) {
	existing, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist snapshot: %w", err)
	}

	if err := catalog.CanAdd(catalog.RefsFromWishlist(existing), userID, productID); err != nil {
		return nil, ErrAlreadyInWishlist
	}

	item := &domain.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Timestamp: time.Now().UTC(),
	}

	if err := s.wishlistRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repository.ErrWishlistItemAlreadyExists) {
			return nil, ErrAlreadyInWishlist
		}
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return item, nil
}

// RemoveFromWishlist deletes the user's wishlist entry for a product.
// Removing an absent entry succeeds.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error {
	if err := s.wishlistRepo.Delete(ctx, userID, productID); err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}
	return nil
}
