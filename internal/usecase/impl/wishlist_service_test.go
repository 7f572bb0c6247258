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
	"github.com/stretchr/testify/require"
)

// wishlistServiceFixtures holds all test dependencies for wishlist service tests.
type wishlistServiceFixtures struct {
	service      usecase.WishlistUsecase
	wishlistRepo *mockRepo.MockWishlistRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestWishlistService(t *testing.T) wishlistServiceFixtures {
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		ProductRepo:  productRepo,
		Logger:       newDiscardLogger(),
	})

	return wishlistServiceFixtures{
		service:      service,
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func TestWishlistService_Toggle_AddsWhenAbsent(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.wishlistRepo.EXPECT().FindProductIDs(ctx, userID).Return([]uuid.UUID{uuid.New()}, nil)
	fx.wishlistRepo.EXPECT().Add(ctx, userID, productID).Return(nil)

	wishlisted, err := fx.service.Toggle(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, wishlisted)
}

func TestWishlistService_Toggle_RemovesWhenPresent(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fx.wishlistRepo.EXPECT().FindProductIDs(ctx, userID).Return([]uuid.UUID{productID}, nil)
	fx.wishlistRepo.EXPECT().Remove(ctx, userID, productID).Return(nil)

	wishlisted, err := fx.service.Toggle(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, wishlisted)
}

func TestWishlistService_Toggle_Unauthenticated(t *testing.T) {
	fx := createTestWishlistService(t)

	_, err := fx.service.Toggle(context.Background(), uuid.Nil, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestWishlistService_Toggle_UnknownProduct(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Toggle(ctx, uuid.New(), productID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestWishlistService_ListProducts(t *testing.T) {
	fx := createTestWishlistService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.wishlistRepo.EXPECT().FindProducts(ctx, userID).Return([]*entity.Product{{ID: uuid.New()}}, nil)

	products, err := fx.service.ListProducts(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}
