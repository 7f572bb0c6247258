package repository

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistRepository defines persistence operations for a user's wishlist.
// Membership is a set keyed on (user, product).
type WishlistRepository interface {
	// Add inserts a wishlist entry. Adding an existing entry is a no-op.
	Add(ctx context.Context, userID, productID uuid.UUID) error

	// Remove deletes a wishlist entry. Removing a missing entry is a no-op.
	Remove(ctx context.Context, userID, productID uuid.UUID) error

	// FindProductIDs retrieves the product IDs in a user's wishlist.
	FindProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// FindProducts retrieves the full products in a user's wishlist,
	// newest entry first.
	FindProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
}
