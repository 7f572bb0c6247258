package pricing

import (
	"testing"

	"luxe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestEffectivePrice_PrefersSalePrice(t *testing.T) {
	product := &entity.Product{Price: 100, SalePrice: floatPtr(80)}

	assert.Equal(t, 80.0, EffectivePrice(product))
}

func TestEffectivePrice_FallsBackToBasePrice(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		want    float64
	}{
		{"no sale price", &entity.Product{Price: 25.50}, 25.50},
		{"zero sale price ignored", &entity.Product{Price: 25.50, SalePrice: floatPtr(0)}, 25.50},
		{"nil product", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectivePrice(tt.product))
		})
	}
}

func TestEffectivePrice_NeverExceedsBasePrice(t *testing.T) {
	prices := []struct{ price, sale float64 }{
		{100, 80},
		{19.99, 9.99},
		{50, 49.99},
	}

	for _, p := range prices {
		product := &entity.Product{Price: p.price, SalePrice: floatPtr(p.sale)}
		assert.LessOrEqual(t, EffectivePrice(product), product.Price)
	}
}

func TestCouponDiscount_Percentage(t *testing.T) {
	coupon := &entity.Coupon{
		Code:          "SAVE10",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}

	assert.Equal(t, 10.0, CouponDiscount(100, coupon))
	assert.Equal(t, 5.55, CouponDiscount(55.50, coupon))
}

func TestCouponDiscount_Fixed(t *testing.T) {
	coupon := &entity.Coupon{
		Code:          "TENOFF",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 10,
		IsActive:      true,
	}

	assert.Equal(t, 10.0, CouponDiscount(100, coupon))
}

func TestCouponDiscount_FixedClampedToSubtotal(t *testing.T) {
	// A fixed coupon larger than the cart never produces a negative
	// post-discount amount.
	coupon := &entity.Coupon{
		Code:          "BIGOFF",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 50,
		IsActive:      true,
	}

	assert.Equal(t, 30.0, CouponDiscount(30, coupon))
}

func TestCouponDiscount_NilOrEmptyCart(t *testing.T) {
	coupon := &entity.Coupon{DiscountType: entity.DiscountTypeFixed, DiscountValue: 5}

	assert.Equal(t, 0.0, CouponDiscount(100, nil))
	assert.Equal(t, 0.0, CouponDiscount(0, coupon))
}

func TestShippingCost_FreeAboveThreshold(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 0.0, rules.ShippingCost(55))
	assert.Equal(t, 9.99, rules.ShippingCost(30))
	// The threshold itself still pays shipping; free shipping starts
	// strictly above it.
	assert.Equal(t, 9.99, rules.ShippingCost(50))
}

func TestFinalTotal(t *testing.T) {
	rules := DefaultRules()

	// subtotal 55 ships free
	assert.Equal(t, 55.0, rules.FinalTotal(55, 0))
	// subtotal 30 pays flat shipping
	assert.Equal(t, 39.99, rules.FinalTotal(30, 0))
	// discount reduces the total, shipping still derived from the subtotal
	assert.Equal(t, 36.99, rules.FinalTotal(30, 3))
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name    string
		product *entity.Product
		want    int
		shown   bool
	}{
		{"20 percent off", &entity.Product{Price: 100, SalePrice: floatPtr(80)}, 20, true},
		{"rounded", &entity.Product{Price: 29.99, SalePrice: floatPtr(19.99)}, 33, true},
		{"no sale price", &entity.Product{Price: 100}, 0, false},
		{"zero base price", &entity.Product{Price: 0, SalePrice: floatPtr(10)}, 0, false},
		{"nil product", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shown := DiscountPercent(tt.product)
			assert.Equal(t, tt.shown, shown)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.56, RoundCents(10.556))
	assert.Equal(t, 39.99, RoundCents(39.99))
	assert.Equal(t, 0.0, RoundCents(0.004))
}
