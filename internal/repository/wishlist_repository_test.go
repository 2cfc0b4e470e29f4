package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartdeal/internal/domain"

	"github.com/google/uuid"
)

func wishlistItem(userID, productID uuid.UUID, ts time.Time) *domain.WishlistItem {
	return &domain.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: productID,
		Timestamp: ts,
	}
}

func TestWishlistRepositoryCreateAndList(t *testing.T) {
	repo := NewWishlistRepository(testDB)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Now().UTC().Truncate(time.Microsecond)
	first := wishlistItem(userID, uuid.New(), base)
	second := wishlistItem(userID, uuid.New(), base.Add(time.Second))

	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("failed to create first item: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("failed to create second item: %v", err)
	}

	items, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("failed to list wishlist: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Error("wishlist items not returned in insertion order")
	}
}

func TestWishlistRepositoryUniquePairViolation(t *testing.T) {
	repo := NewWishlistRepository(testDB)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()
	ts := time.Now().UTC()

	if err := repo.Create(ctx, wishlistItem(userID, productID, ts)); err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	err := repo.Create(ctx, wishlistItem(userID, productID, ts))
	if !errors.Is(err, ErrWishlistItemAlreadyExists) {
		t.Errorf("expected ErrWishlistItemAlreadyExists, got %v", err)
	}
}

func TestWishlistRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := NewWishlistRepository(testDB)
	ctx := context.Background()

	userID := uuid.New()
	productID := uuid.New()

	if err := repo.Create(ctx, wishlistItem(userID, productID, time.Now().UTC())); err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	if err := repo.Delete(ctx, userID, productID); err != nil {
		t.Fatalf("failed to delete item: %v", err)
	}
	if err := repo.Delete(ctx, userID, productID); err != nil {
		t.Errorf("second delete returned error: %v", err)
	}
}
