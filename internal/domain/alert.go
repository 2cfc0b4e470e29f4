package domain

import (
	"time"

	"github.com/google/uuid"
)

// PriceAlert asks to be notified when a product's best price drops to or
// below the target.
type PriceAlert struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	ProductID   uuid.UUID `json:"productId" db:"product_id"`
	TargetPrice float64   `json:"targetPrice" db:"target_price"`
	Email       string    `json:"email" db:"email"`
	Active      bool      `json:"active" db:"active"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}
