package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// CartView is the full derived state of a user's cart.
type CartView struct {
	Items    []*entity.CartItem
	Count    int     // Sum of item quantities.
	Subtotal float64 // Sum of effective price times quantity.
}

// CouponQuote prices a cart with a coupon applied. The coupon itself is
// not persisted; the quote is recomputed at checkout.
type CouponQuote struct {
	Code     string
	Subtotal float64
	Discount float64
	Shipping float64
	Total    float64
}

// CartUsecase defines the interface for cart management use cases.
// All operations require an authenticated user.
type CartUsecase interface {
	// GetCart retrieves the user's cart with derived totals.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem adds a product to the cart. If the product is already in the
	// cart the quantities are merged instead of creating a duplicate line.
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error)

	// UpdateItemQuantity sets the quantity of a cart line. A quantity of
	// zero or less removes the line.
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*CartView, error)

	// RemoveItem deletes a cart line. Removing an absent line is not an error.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error)

	// ClearCart removes every line from the user's cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error

	// ApplyCoupon validates a coupon code against the current cart and
	// returns the discounted totals.
	ApplyCoupon(ctx context.Context, userID uuid.UUID, code string) (*CouponQuote, error)
}
