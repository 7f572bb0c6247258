package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType distinguishes how a coupon's value is interpreted.
type DiscountType string

const (
	// DiscountTypePercentage takes DiscountValue percent off the cart subtotal.
	DiscountTypePercentage DiscountType = "percentage"

	// DiscountTypeFixed takes a flat DiscountValue amount off the cart subtotal.
	DiscountTypeFixed DiscountType = "fixed"
)

// Coupon is a discount code. Codes match case-insensitively and are stored
// upper-cased. A coupon is only ever applied transiently to produce a quote;
// it is never persisted onto a cart or an order.
type Coupon struct {
	ID            uuid.UUID
	Code          string       // Unique, upper-cased code.
	DiscountType  DiscountType // percentage or fixed.
	DiscountValue float64      // > 0; for percentage conventionally <= 100.
	IsActive      bool         // Inactive coupons are treated as unknown.
	CreatedAt     time.Time
}
