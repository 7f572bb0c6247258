package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. The commerce engine only ever reads the id to
// scope cart, wishlist and order records; the rest exists for the identity
// surface. PasswordHash never crosses the delivery layer.
type User struct {
	ID           uuid.UUID
	Email        string // Login identifier, unique.
	Name         string // Display name.
	PasswordHash string // bcrypt hash; empty on records returned to callers.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
