package impl

import (
	"context"
	"testing"
	"time"

	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	mockRepo "luxe/internal/mocks/repository"
	mockSvc "luxe/internal/mocks/service"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	txManager      *mockRepo.MockTransactionManager
	orderRepo      *mockRepo.MockOrderRepository
	cartRepo       *mockRepo.MockCartRepository
	couponRepo     *mockRepo.MockCouponRepository
	eventPublisher *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	couponRepo := mockRepo.NewMockCouponRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		CartRepo:       cartRepo,
		CouponRepo:     couponRepo,
		EventPublisher: eventPublisher,
		QRCodeService:  qrcodeService,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:        service,
		txManager:      txManager,
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		couponRepo:     couponRepo,
		eventPublisher: eventPublisher,
		qrcodeService:  qrcodeService,
	}
}

func validAddress() usecase.ShippingAddressInput {
	return usecase.ShippingAddressInput{
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		Phone:        "+1-555-0100",
		AddressLine1: "12 Analytical Row",
		City:         "London",
		State:        "LDN",
		Zip:          "12345",
		Country:      "UK",
	}
}

// expectCheckoutTx wires the transaction manager to run the checkout
// function against transaction-bound repository mocks.
func expectCheckoutTx(t *testing.T, fx orderServiceFixtures, userID uuid.UUID, captured **entity.Order) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)

			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
			factory.EXPECT().NewCartRepository().Return(txCartRepo)

			txOrderRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
				RunAndReturn(func(_ context.Context, order *entity.Order) error {
					*captured = order

					return nil
				})
			txCartRepo.EXPECT().DeleteByUser(mock.Anything, userID).Return(nil)

			return fn(factory)
		})
}

func TestOrderService_PlaceOrder_FreeShippingAboveThreshold(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 55.00, nil)

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 1, Product: product},
	}, nil)

	var captured *entity.Order
	expectCheckoutTx(t, fx, userID, &captured)
	fx.eventPublisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil).Maybe()

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.InDelta(t, 55.00, order.SubtotalAmount, 0.001)
	assert.InDelta(t, 0.00, order.ShippingAmount, 0.001)
	assert.InDelta(t, 55.00, order.TotalAmount, 0.001)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
	assert.Equal(t, product.Name, order.Items[0].Name)
	assert.InDelta(t, 55.00, order.Items[0].Price, 0.001)
}

func TestOrderService_PlaceOrder_MultiLineCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	first := testProduct(uuid.New(), 20.00, nil)
	second := testProduct(uuid.New(), 15.00, nil)

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: first.ID, Quantity: 2, Product: first},
		{ID: uuid.New(), UserID: userID, ProductID: second.ID, Quantity: 1, Product: second},
	}, nil)

	var captured *entity.Order
	expectCheckoutTx(t, fx, userID, &captured)
	fx.eventPublisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil).Maybe()

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 55.00, order.SubtotalAmount, 0.001)
	assert.InDelta(t, 0.00, order.ShippingAmount, 0.001, "55.00 clears the free shipping threshold")
	assert.InDelta(t, 55.00, order.TotalAmount, 0.001)
}

func TestOrderService_PlaceOrder_FlatShippingBelowThreshold(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 30.00, nil)

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 1, Product: product},
	}, nil)

	var captured *entity.Order
	expectCheckoutTx(t, fx, userID, &captured)
	fx.eventPublisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil).Maybe()

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.InDelta(t, 30.00, order.SubtotalAmount, 0.001)
	assert.InDelta(t, 9.99, order.ShippingAmount, 0.001)
	assert.InDelta(t, 39.99, order.TotalAmount, 0.001)
}

func TestOrderService_PlaceOrder_SnapshotsSalePrice(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 80.00, floatPtr(60.00))

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 2, Product: product},
	}, nil)

	var captured *entity.Order
	expectCheckoutTx(t, fx, userID, &captured)
	fx.eventPublisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil).Maybe()

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.InDelta(t, 60.00, order.Items[0].Price, 0.001, "snapshot must use the effective price at checkout")
	assert.InDelta(t, 120.00, order.SubtotalAmount, 0.001)
	assert.InDelta(t, 120.00, order.TotalAmount, 0.001)
}

func TestOrderService_PlaceOrder_CouponFoldedIntoSubtotal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 100.00, nil)
	coupon := &entity.Coupon{
		ID:            uuid.New(),
		Code:          "SAVE10",
		DiscountType:  entity.DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
	}

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 1, Product: product},
	}, nil)
	fx.couponRepo.EXPECT().FindActiveByCode(ctx, "SAVE10").Return(coupon, nil)

	var captured *entity.Order
	expectCheckoutTx(t, fx, userID, &captured)
	fx.eventPublisher.EXPECT().PublishOrderPlaced(mock.Anything, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil).Maybe()

	order, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		CouponCode:    "save10",
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.InDelta(t, 90.00, order.SubtotalAmount, 0.001)
	assert.InDelta(t, 0.00, order.ShippingAmount, 0.001)
	assert.InDelta(t, 90.00, order.TotalAmount, 0.001)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	_, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: "card",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_PlaceOrder_MissingRequiredFields(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	mutations := map[string]func(*usecase.ShippingAddressInput){
		"full_name":     func(a *usecase.ShippingAddressInput) { a.FullName = "" },
		"email":         func(a *usecase.ShippingAddressInput) { a.Email = "" },
		"phone":         func(a *usecase.ShippingAddressInput) { a.Phone = "" },
		"address_line1": func(a *usecase.ShippingAddressInput) { a.AddressLine1 = "" },
		"city":          func(a *usecase.ShippingAddressInput) { a.City = "" },
		"state":         func(a *usecase.ShippingAddressInput) { a.State = "" },
		"zip":           func(a *usecase.ShippingAddressInput) { a.Zip = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			address := validAddress()
			mutate(&address)

			_, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
				Address:       address,
				PaymentMethod: "card",
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), field)
		})
	}
}

func TestOrderService_PlaceOrder_TransactionFailureLeavesCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	product := testProduct(productID, 20.00, nil)

	fx.cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, ProductID: productID, Quantity: 1, Product: product},
	}, nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("serialization failure"))

	_, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Address:       validAddress(),
		PaymentMethod: "card",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute checkout transaction")
	// DeleteByUser was never expected outside the transaction, so the cart
	// survives a failed checkout.
}

func TestOrderService_PlaceOrder_Unauthenticated(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PlaceOrder(context.Background(), uuid.Nil, usecase.PlaceOrderInput{
		Address: validAddress(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_GetOrder_HidesOtherUsersOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.GetOrder(ctx, uuid.New(), orderID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	newer := &entity.Order{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()}
	older := &entity.Order{ID: uuid.New(), UserID: userID, CreatedAt: time.Now().Add(-time.Hour)}

	fx.orderRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Order{newer, older}, nil)

	orders, err := fx.service.ListOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
}

func TestOrderService_GetTracking_ShippedOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusShipped}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	tracking, err := fx.service.GetTracking(ctx, userID, orderID)
	require.NoError(t, err)
	require.Len(t, tracking.Steps, 5)
	assert.True(t, tracking.Steps[2].Active)
	assert.True(t, tracking.Steps[2].Done)
	assert.False(t, tracking.Steps[3].Done)
}

func TestOrderService_GetTracking_CancelledOrderHasNoTimeline(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusCancelled}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	tracking, err := fx.service.GetTracking(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Nil(t, tracking.Steps)
}

func TestOrderService_GenerateTrackingQR(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: userID, Status: entity.OrderStatusProcessing}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.qrcodeService.EXPECT().GenerateOrderTrackingQR(orderID).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.GenerateTrackingQR(ctx, userID, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_AdvanceStatus(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusProcessing).Return(nil)

	updated, err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestOrderService_AdvanceStatus_RedeliveredEventDoesNotRegress(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusShipped}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	// UpdateStatus is deliberately not expected; a shipped order must not
	// drop back to processing when the placement event arrives twice.

	_, err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusProcessing)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderService_AdvanceStatus_SameStatusRejected(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusProcessing}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusProcessing)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}

func TestOrderService_AdvanceStatus_CancelNonTerminal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusOutForDelivery}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)
	fx.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).Return(nil)

	updated, err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_AdvanceStatus_TerminalOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusDelivered}

	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	_, err := fx.service.AdvanceStatus(ctx, orderID, entity.OrderStatusShipped)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
}
