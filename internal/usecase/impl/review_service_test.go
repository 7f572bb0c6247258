package impl

import (
	"context"
	"testing"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	mockRepo "luxe/internal/mocks/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	txManager   *mockRepo.MockTransactionManager
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:     service,
		txManager:   txManager,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func TestReviewService_SubmitReview_RefreshesAggregates(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	before := &entity.Product{ID: productID, AvgRating: 4.0, ReviewCount: 1}
	after := &entity.Product{ID: productID, AvgRating: 4.5, ReviewCount: 2}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(before, nil).Once()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
			factory.EXPECT().NewProductRepository().Return(txProductRepo)

			txReviewRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)
			txProductRepo.EXPECT().RefreshRatingStats(mock.Anything, productID).Return(nil)

			return fn(factory)
		})

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(after, nil).Once()

	out, err := fx.service.SubmitReview(ctx, userID, usecase.SubmitReviewInput{
		ProductID: productID,
		Rating:    5,
		Comment:   "Exactly as described.",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, out.Review.Rating)
	assert.InDelta(t, 4.5, out.Product.AvgRating, 0.001, "caller receives the refreshed aggregates")
	assert.Equal(t, 2, out.Product.ReviewCount)
}

func TestReviewService_SubmitReview_RatingBounds(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	userID := uuid.New()

	for _, rating := range []int{0, -1, 6} {
		_, err := fx.service.SubmitReview(ctx, userID, usecase.SubmitReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
			Comment:   "fine",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestReviewService_SubmitReview_EmptyComment(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.SubmitReview(context.Background(), uuid.New(), usecase.SubmitReviewInput{
		ProductID: uuid.New(),
		Rating:    4,
		Comment:   "   ",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_SubmitReview_Unauthenticated(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.SubmitReview(context.Background(), uuid.Nil, usecase.SubmitReviewInput{
		ProductID: uuid.New(),
		Rating:    4,
		Comment:   "fine",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestReviewService_SubmitReview_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.SubmitReview(ctx, uuid.New(), usecase.SubmitReviewInput{
		ProductID: productID,
		Rating:    4,
		Comment:   "fine",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.reviewRepo.EXPECT().FindByProduct(ctx, productID).Return([]*entity.Review{
		{ID: uuid.New(), ProductID: productID, Rating: 5, ReviewerName: "Ada"},
	}, nil)

	reviews, err := fx.service.ListReviews(ctx, productID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ada", reviews[0].ReviewerName)
}
