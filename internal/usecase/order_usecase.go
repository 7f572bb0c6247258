package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ShippingAddressInput carries the checkout address form. Validation tags
// mirror the required checkout fields.
type ShippingAddressInput struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Zip          string `json:"zip" validate:"required"`
	Country      string `json:"country"`
}

// PlaceOrderInput defines the data required to check out the current cart.
type PlaceOrderInput struct {
	Address       ShippingAddressInput
	CouponCode    string // Optional, re-validated at checkout.
	PaymentMethod string
}

// --- Output DTOs ---

// TrackingOutput returns an order's fulfillment progress.
type TrackingOutput struct {
	Order *entity.Order
	Steps []entity.TrackingStep // Nil when the order is cancelled.
}

// OrderUsecase defines the interface for checkout and order history use cases.
type OrderUsecase interface {
	// PlaceOrder snapshots the user's cart into an immutable order, clears
	// the cart, and returns the created order.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*entity.Order, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder retrieves one of the user's orders by ID.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// GetTracking retrieves an order with its fulfillment timeline.
	GetTracking(ctx context.Context, userID, orderID uuid.UUID) (*TrackingOutput, error)

	// GenerateTrackingQR renders a QR code linking to the order's tracking page.
	GenerateTrackingQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	// AdvanceStatus moves an order to a new fulfillment status.
	AdvanceStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
