package postgres

import (
	"context"

	"luxe/internal/domain/entity"
	"luxe/internal/domain/repository"
	"luxe/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindActiveByCode retrieves an active coupon by its normalized (upper-case) code.
// Inactive coupons are indistinguishable from unknown ones.
func (repo *couponRepository) FindActiveByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:            data.ID,
		Code:          data.Code,
		DiscountType:  entity.DiscountType(data.DiscountType),
		DiscountValue: data.DiscountValue,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
	}
}
