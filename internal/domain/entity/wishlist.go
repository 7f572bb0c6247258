package entity

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntry marks a product as wishlisted by a user. Entries form a set
// over (user, product): presence means wishlisted, there is no ordering or
// quantity, and toggling twice returns the set to its original state.
type WishlistEntry struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	CreatedAt time.Time
}
