package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"smartdeal/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrPriceAlertNotFound = errors.New("price alert not found")
)

// PriceAlertRepository defines the interface for price alert persistence.
type PriceAlertRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PriceAlert, error)
	Create(ctx context.Context, alert *domain.PriceAlert) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type priceAlertRepository struct {
	db *sql.DB
}

// NewPriceAlertRepository creates a new instance of PriceAlertRepository
func NewPriceAlertRepository(db *sql.DB) PriceAlertRepository {
	return &priceAlertRepository{db: db}
}

// ListByUser returns the user's alerts, newest first.
func (r *priceAlertRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PriceAlert, error) {
	query := `
		SELECT id, user_id, product_id, target_price, email, active, timestamp
		FROM price_alerts
		WHERE user_id = $1
		ORDER BY timestamp DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list price alerts: %w", err)
	}
	defer rows.Close()

	alerts := []domain.PriceAlert{}
	for rows.Next() {
		var alert domain.PriceAlert
		err := rows.Scan(&alert.ID, &alert.UserID, &alert.ProductID, &alert.TargetPrice, &alert.Email, &alert.Active, &alert.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price alerts: %w", err)
	}

	return alerts, nil
}

// Create inserts a new price alert using parameterized queries
func (r *priceAlertRepository) Create(ctx context.Context, alert *domain.PriceAlert) error {
	query := `
		INSERT INTO price_alerts (id, user_id, product_id, target_price, email, active, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		alert.ID,
		alert.UserID,
		alert.ProductID,
		alert.TargetPrice,
		alert.Email,
		alert.Active,
		alert.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create price alert: %w", err)
	}

	return nil
}

// Delete removes an alert by ID.
func (r *priceAlertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM price_alerts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete price alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPriceAlertNotFound
	}

	return nil
}
