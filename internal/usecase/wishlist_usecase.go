package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the interface for wishlist use cases.
// The wishlist is a set of products per user.
type WishlistUsecase interface {
	// Toggle flips a product's wishlist membership and reports the new
	// state: true if the product is now in the wishlist.
	Toggle(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// ListProductIDs retrieves the product IDs in the user's wishlist.
	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ListProducts retrieves the full products in the user's wishlist.
	ListProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
}
