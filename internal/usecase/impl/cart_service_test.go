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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	couponRepo  *mockRepo.MockCouponRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)

	service := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		CouponRepo:  couponRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
	}
}

func testProduct(id uuid.UUID, price float64, salePrice *float64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Cashmere Scarf",
		Price:     price,
		SalePrice: salePrice,
		Stock:     10,
	}
}

func TestCartService_AddItem_NewProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 25.00, nil)

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, userID, productID).Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 2, Product: product},
	}, nil)

	view, err := fx.service.AddItem(ctx, userID, productID, 2)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Count)
	assert.InDelta(t, 50.00, view.Subtotal, 0.001)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()
	product := testProduct(productID, 25.00, nil)
	existing := &entity.CartItem{ID: itemID, UserID: userID, ProductID: productID, Quantity: 3, Product: product}

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(product, nil)
	fx.cartRepo.EXPECT().FindItem(ctx, userID, productID).Return(existing, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, itemID, 5).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: itemID, UserID: userID, ProductID: productID, Quantity: 5, Product: product},
	}, nil)

	view, err := fx.service.AddItem(ctx, userID, productID, 2)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1, "merge-on-add must never create a duplicate line")
	assert.Equal(t, 5, view.Count)
}

func TestCartService_AddItem_Unauthenticated(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.Nil, uuid.New(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), uuid.New(), uuid.New(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, userID, productID, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateItemQuantity_Overwrites(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()
	product := testProduct(productID, 10.00, nil)
	item := &entity.CartItem{ID: itemID, UserID: userID, ProductID: productID, Quantity: 1, Product: product}

	fx.cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, itemID, 4).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: itemID, UserID: userID, ProductID: productID, Quantity: 4, Product: product},
	}, nil)

	view, err := fx.service.UpdateItemQuantity(ctx, userID, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Count)
}

func TestCartService_UpdateItemQuantity_ZeroRemovesItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.CartItem{ID: itemID, UserID: userID, ProductID: uuid.New(), Quantity: 2}

	fx.cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	view, err := fx.service.UpdateItemQuantity(ctx, userID, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.Count)
}

func TestCartService_UpdateItemQuantity_NegativeRemovesItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()
	item := &entity.CartItem{ID: itemID, UserID: userID, ProductID: uuid.New(), Quantity: 2}

	fx.cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)
	fx.cartRepo.EXPECT().DeleteItem(ctx, itemID).Return(nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	view, err := fx.service.UpdateItemQuantity(ctx, userID, itemID, -1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_UpdateItemQuantity_MissingItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(nil, repository.ErrCartItemNotFound)

	_, err := fx.service.UpdateItemQuantity(ctx, uuid.New(), itemID, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveItem_AlreadyGoneIsNotAnError(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	view, err := fx.service.RemoveItem(ctx, userID, itemID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestCartService_RemoveItem_OtherUsersItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	itemID := uuid.New()
	item := &entity.CartItem{ID: itemID, UserID: uuid.New(), ProductID: uuid.New(), Quantity: 1}

	fx.cartRepo.EXPECT().FindItemByID(ctx, itemID).Return(item, nil)

	_, err := fx.service.RemoveItem(ctx, uuid.New(), itemID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCartService_GetCart_UsesSalePriceInSubtotal(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 40.00, floatPtr(29.99))

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 2, Product: product},
	}, nil)

	view, err := fx.service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.InDelta(t, 59.98, view.Subtotal, 0.001)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx, userID))
}

func TestCartService_ApplyCoupon_PercentageDiscount(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 50.00, nil)
	coupon := &entity.Coupon{
		ID:            uuid.New(),
		Code:          "SAVE10",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}

	fx.couponRepo.EXPECT().FindActiveByCode(ctx, "SAVE10").Return(coupon, nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 2, Product: product},
	}, nil)

	quote, err := fx.service.ApplyCoupon(ctx, userID, "save10")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", quote.Code)
	assert.InDelta(t, 100.00, quote.Subtotal, 0.001)
	assert.InDelta(t, 10.00, quote.Discount, 0.001)
	assert.InDelta(t, 0.00, quote.Shipping, 0.001)
	assert.InDelta(t, 90.00, quote.Total, 0.001)
}

func TestCartService_ApplyCoupon_UnknownCode(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.couponRepo.EXPECT().FindActiveByCode(ctx, "NOPE").Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.ApplyCoupon(ctx, userID, "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoupon)
}

func TestCartService_ApplyCoupon_DoesNotMutateCart(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 30.00, nil)
	coupon := &entity.Coupon{
		ID:            uuid.New(),
		Code:          "TAKE5",
		DiscountType:  entity.DiscountTypeFixed,
		DiscountValue: 5,
		IsActive:      true,
	}

	fx.couponRepo.EXPECT().FindActiveByCode(ctx, "TAKE5").Return(coupon, nil)
	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 1, Product: product},
	}, nil)

	quote, err := fx.service.ApplyCoupon(ctx, userID, " take5 ")
	require.NoError(t, err)
	assert.InDelta(t, 30.00, quote.Subtotal, 0.001)
	assert.InDelta(t, 5.00, quote.Discount, 0.001)
	assert.InDelta(t, 9.99, quote.Shipping, 0.001)
	assert.InDelta(t, 34.99, quote.Total, 0.001)
	// Only read operations were expected on the cart repository.
}

func TestCartService_GetCart_RepositoryFailure(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.GetCart(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load cart")
}
