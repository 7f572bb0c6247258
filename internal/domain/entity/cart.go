package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a single line of a user's cart. At most one CartItem exists per
// (user, product) pair; adding the same product again merges into the existing
// line. Quantity is always >= 1 in storage, a quantity update to 0 or below is
// a removal.
type CartItem struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the cart line.
	UserID    uuid.UUID // Owning user; cart items are always scoped to one account.
	ProductID uuid.UUID // The product this line refers to.
	Quantity  int       // Units of the product, >= 1.
	Product   *Product  // The live product record, loaded alongside the line for pricing.
	CreatedAt time.Time // When the line was first added.
	UpdatedAt time.Time // Timestamp of the last quantity change.
}
