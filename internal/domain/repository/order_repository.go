package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines persistence operations for orders. Orders are
// immutable snapshots except for their fulfillment status.
type OrderRepository interface {
	// Create inserts a new order with its item snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the fulfillment status of an order.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
