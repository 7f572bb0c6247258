// Package pricing holds the pure price derivation rules of the storefront:
// effective unit prices, coupon discounts, shipping and final totals. Nothing
// here touches storage; the functions are deterministic over their inputs so
// every caller derives the same numbers from the same catalog state.
package pricing

import (
	"math"

	"luxe/internal/domain/entity"
)

// Rules are the tunable pricing knobs. Orders above FreeShippingThreshold
// ship free, everything else pays FlatShippingRate.
type Rules struct {
	FreeShippingThreshold float64
	FlatShippingRate      float64
}

// DefaultRules returns the storefront defaults: free shipping above 50.00,
// flat 9.99 otherwise.
func DefaultRules() Rules {
	return Rules{
		FreeShippingThreshold: 50,
		FlatShippingRate:      9.99,
	}
}

// EffectivePrice is the unit price actually charged for a product: the sale
// price when one is present and positive, otherwise the base price. It never
// exceeds the base price for a well-formed product.
func EffectivePrice(p *entity.Product) float64 {
	if p == nil {
		return 0
	}
	if p.OnSale() {
		return *p.SalePrice
	}

	return p.Price
}

// CouponDiscount computes the discount a coupon takes off a cart subtotal.
// Percentage coupons take their share of the subtotal; fixed coupons take
// their value, clamped to the subtotal so a discount can never push the
// post-discount amount below zero. The result is rounded to cents.
func CouponDiscount(cartTotal float64, c *entity.Coupon) float64 {
	if c == nil || cartTotal <= 0 {
		return 0
	}

	var discount float64
	switch c.DiscountType {
	case entity.DiscountTypePercentage:
		discount = cartTotal * (c.DiscountValue / 100)
	case entity.DiscountTypeFixed:
		discount = c.DiscountValue
	default:
		return 0
	}

	if discount > cartTotal {
		discount = cartTotal
	}

	return RoundCents(discount)
}

// ShippingCost is the flat-rate shipping charge for a cart subtotal.
func (r Rules) ShippingCost(cartTotal float64) float64 {
	if cartTotal > r.FreeShippingThreshold {
		return 0
	}

	return r.FlatShippingRate
}

// FinalTotal is the amount charged: subtotal minus discount plus shipping.
// Shipping is derived from the undiscounted subtotal, matching the cart
// summary the shopper sees.
func (r Rules) FinalTotal(cartTotal, discount float64) float64 {
	return RoundCents(cartTotal - discount + r.ShippingCost(cartTotal))
}

// DiscountPercent is the sale badge percentage for a product,
// round(100 x (1 - sale/price)). The badge only exists when the product is on
// sale and has a positive base price.
func DiscountPercent(p *entity.Product) (int, bool) {
	if p == nil || !p.OnSale() || p.Price <= 0 {
		return 0, false
	}

	return int(math.Round(100 * (1 - *p.SalePrice/p.Price))), true
}

// RoundCents rounds a monetary amount to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
