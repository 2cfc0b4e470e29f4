package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartdeal/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrWishlistItemAlreadyExists = errors.New("product already in wishlist")
)

// WishlistRepository defines the interface for wishlist persistence.
type WishlistRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error)
	Create(ctx context.Context, item *domain.WishlistItem) error
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

type wishlistRepository struct {
	db *sql.DB
}

// NewWishlistRepository creates a new instance of WishlistRepository
func NewWishlistRepository(db *sql.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

// ListByUser returns the user's wishlist snapshot in insertion order.
func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WishlistItem, error) {
	query := `
		SELECT id, user_id, product_id, timestamp
		FROM wishlist_items
		WHERE user_id = $1
		ORDER BY timestamp
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}
	defer rows.Close()

	items := []domain.WishlistItem{}
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishlist items: %w", err)
	}

	return items, nil
}

// Create inserts a wishlist item, surfacing the unique pair constraint as
// ErrWishlistItemAlreadyExists.
func (r *wishlistRepository) Create(ctx context.Context, item *domain.WishlistItem) error {
	query := `
		INSERT INTO wishlist_items (id, user_id, product_id, timestamp)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, item.ID, item.UserID, item.ProductID, item.Timestamp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrWishlistItemAlreadyExists
		}
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}

	return nil
}

// Delete removes the user's wishlist item for a product; absent items are a
// no-op success.
func (r *wishlistRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	query := `DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, productID); err != nil {
		return fmt.Errorf("failed to delete wishlist item: %w", err)
	}

	return nil
}
