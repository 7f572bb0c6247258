package usecase

import (
	"context"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitReviewInput defines the data required to review a product.
type SubmitReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// --- Output DTOs ---

// SubmitReviewOutput returns the created review together with the product
// carrying its refreshed rating aggregates.
type SubmitReviewOutput struct {
	Review  *entity.Review
	Product *entity.Product
}

// ReviewUsecase defines the interface for product review use cases.
type ReviewUsecase interface {
	// SubmitReview records a review and recomputes the product's rating
	// aggregates in the same transaction.
	SubmitReview(ctx context.Context, userID uuid.UUID, input SubmitReviewInput) (*SubmitReviewOutput, error)

	// ListReviews retrieves a product's reviews, newest first.
	ListReviews(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)
}
