package repository

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines persistence operations for product reviews.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByProduct retrieves a product's reviews with reviewer names,
	// newest first.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
