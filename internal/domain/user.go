package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record mirrored from the external identity provider.
// Authentication itself happens outside this service; we only keep the
// profile needed to key carts, wishlists and alerts.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       string    `json:"email" db:"email"`
	Name        string    `json:"name" db:"name"`
	FirebaseUID string    `json:"firebaseUid" db:"firebase_uid"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}
