package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is a domain-specific error returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines persistence operations for a user's cart rows.
// A cart holds at most one row per (user, product) pair.
type CartRepository interface {
	// FindByUser retrieves all cart items for a user with their products
	// loaded, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindItem retrieves the cart row for a (user, product) pair.
	FindItem(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)

	// FindItemByID retrieves a cart row by its own ID.
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*entity.CartItem, error)

	// CreateItem inserts a new cart row.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity of an existing cart row.
	UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a single cart row.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// DeleteByUser removes every cart row belonging to a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
