package postgres

import (
	"context"
	"time"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create inserts a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// reviewRow carries a review joined with its author's display name.
type reviewRow struct {
	ID           uuid.UUID
	ProductID    uuid.UUID
	UserID       uuid.UUID
	Rating       int
	Comment      string
	ReviewerName string
	CreatedAt    time.Time
}

// FindByProduct retrieves a product's reviews with reviewer names, newest first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	var rows []reviewRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("reviews.id, reviews.product_id, reviews.user_id, reviews.rating, reviews.comment, reviews.created_at, users.name AS reviewer_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, &entity.Review{
			ID:           row.ID,
			ProductID:    row.ProductID,
			UserID:       row.UserID,
			Rating:       row.Rating,
			Comment:      row.Comment,
			ReviewerName: row.ReviewerName,
			CreatedAt:    row.CreatedAt,
		})
	}

	return reviews, nil
}
