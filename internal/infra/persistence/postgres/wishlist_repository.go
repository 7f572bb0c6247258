package postgres

import (
	"context"

	"luxe/internal/domain/entity"
	"luxe/internal/domain/repository"
	"luxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// wishlistRepository implements the repository.WishlistRepository interface using GORM.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// Add inserts a wishlist entry. Adding an existing entry is a no-op.
func (repo *wishlistRepository) Add(ctx context.Context, userID, productID uuid.UUID) error {
	entryM := &model.WishlistEntryModel{
		UserID:    userID,
		ProductID: productID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to add wishlist entry")
	}

	return nil
}

// Remove deletes a wishlist entry. Removing a missing entry is a no-op.
func (repo *wishlistRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove wishlist entry")
	}

	return nil
}

// FindProductIDs retrieves the product IDs in a user's wishlist, newest entry first.
func (repo *wishlistRepository) FindProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var productIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.WishlistEntryModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &productIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist product IDs")
	}

	return productIDs, nil
}

// FindProducts retrieves the full products in a user's wishlist, newest entry first.
func (repo *wishlistRepository) FindProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var entryModels []*model.WishlistEntryModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find wishlist products")
	}

	products := make([]*entity.Product, 0, len(entryModels))
	for _, entryM := range entryModels {
		if entryM.Product == nil {
			continue
		}
		products = append(products, toProductDomain(entryM.Product))
	}

	return products, nil
}
