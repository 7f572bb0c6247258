package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"
)

// ErrCouponNotFound is a domain-specific error returned when no active coupon matches a code.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines lookup operations for discount coupons.
type CouponRepository interface {
	// FindActiveByCode retrieves an active coupon by its normalized
	// (upper-case) code.
	FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error)
}
