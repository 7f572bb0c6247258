package impl

import (
	"context"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"luxe/config"
	deliverycontext "luxe/internal/delivery/context"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/lifecycle"
	"luxe/internal/domain/pricing"
	"luxe/internal/domain/repository"
	"luxe/internal/domain/service"
	"luxe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	couponRepo     repository.CouponRepository
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	rules          pricing.Rules
	validate       *validator.Validate
	logger         *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	OrderRepo      repository.OrderRepository
	CartRepo       repository.CartRepository
	CouponRepo     repository.CouponRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	rules := pricing.DefaultRules()
	if params.Config != nil && params.Config.Pricing != nil {
		rules = pricing.Rules{
			FreeShippingThreshold: params.Config.Pricing.FreeShippingThreshold,
			FlatShippingRate:      params.Config.Pricing.FlatShippingRate,
		}
	}

	return &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		cartRepo:       params.CartRepo,
		couponRepo:     params.CouponRepo,
		eventPublisher: params.EventPublisher,
		qrcodeService:  params.QRCodeService,
		rules:          rules,
		validate:       newAddressValidator(),
		logger:         params.Logger,
	}
}

// newAddressValidator builds a validator that reports field names by their
// json tag so error details match the request payload.
func newAddressValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder snapshots the user's cart into an immutable order and clears
// the cart in the same transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if err := srv.validate.Struct(input.Address); err != nil {
		return nil, validationError(err)
	}

	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	lines := make([]entity.OrderItem, 0, len(items))
	cartTotal := 0.0
	for _, item := range items {
		if item.Product == nil {
			return nil, errors.New("cart item missing product data")
		}
		unitPrice := pricing.EffectivePrice(item.Product)
		lines = append(lines, entity.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     unitPrice,
			Quantity:  item.Quantity,
		})
		cartTotal += unitPrice * float64(item.Quantity)
	}
	cartTotal = pricing.RoundCents(cartTotal)

	discount, err := srv.resolveDiscount(ctx, cartTotal, input.CouponCode)
	if err != nil {
		return nil, err
	}

	// The discount is folded into the subtotal rather than stored as a
	// separate field on the order.
	subtotal := pricing.RoundCents(cartTotal - discount)
	shipping := srv.rules.ShippingCost(cartTotal)

	order := &entity.Order{
		ID:             uuid.New(),
		UserID:         userID,
		Status:         entity.OrderStatusPending,
		SubtotalAmount: subtotal,
		ShippingAmount: shipping,
		TotalAmount:    pricing.RoundCents(subtotal + shipping),
		ShippingAddress: entity.ShippingAddress{
			FullName:     input.Address.FullName,
			Email:        input.Address.Email,
			Phone:        input.Address.Phone,
			AddressLine1: input.Address.AddressLine1,
			AddressLine2: input.Address.AddressLine2,
			City:         input.Address.City,
			State:        input.Address.State,
			Zip:          input.Address.Zip,
			Country:      input.Address.Country,
		},
		Items:         lines,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}
		if err := repoFactory.NewCartRepository().DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute checkout transaction", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}

	srv.log(ctx).Info("Order placed", slog.Any("orderID", order.ID), slog.String("shortCode", order.ShortCode()), slog.Float64("total", order.TotalAmount))
	srv.publishOrderPlaced(ctx, order)

	return order, nil
}

// resolveDiscount re-validates an optional coupon code at checkout time.
func (srv *orderService) resolveDiscount(ctx context.Context, cartTotal float64, code string) (float64, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return 0, nil
	}

	coupon, err := srv.couponRepo.FindActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return 0, domainerrors.ErrInvalidCoupon
		}

		return 0, errors.Wrap(err, "failed to find coupon")
	}

	return pricing.CouponDiscount(cartTotal, coupon), nil
}

// publishOrderPlaced emits the order placed event without blocking the
// request. Publish failures are logged, never surfaced to the buyer.
func (srv *orderService) publishOrderPlaced(ctx context.Context, order *entity.Order) {
	event := &service.OrderPlacedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		ShortCode:   order.ShortCode(),
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
	}

	logger := srv.log(ctx)
	go func() {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.eventPublisher.PublishOrderPlaced(pubCtx, event); err != nil {
			logger.Warn("Failed to publish order placed event", slog.String("orderID", event.OrderID), slog.Any("error", err))
		}
	}()
}

// ListOrders retrieves the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder retrieves one of the user's orders by ID.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != userID {
		// Hide other users' orders rather than confirming their existence.
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

// GetTracking retrieves an order with its fulfillment timeline.
func (srv *orderService) GetTracking(ctx context.Context, userID, orderID uuid.UUID) (*usecase.TrackingOutput, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	return &usecase.TrackingOutput{
		Order: order,
		Steps: order.Status.Tracking(),
	}, nil
}

// GenerateTrackingQR renders a QR code linking to the order's tracking page.
func (srv *orderService) GenerateTrackingQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateOrderTrackingQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}

// AdvanceStatus moves an order to a new fulfillment status. Intended for
// the fulfillment process, not the buyer.
func (srv *orderService) AdvanceStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !order.Status.CanAdvanceTo(status) {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(
			"order cannot move from " + string(order.Status) + " to " + string(status))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	order.Status = status

	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.String("status", string(status)))

	return order, nil
}

// validationError converts validator failures into the domain validation
// error, listing the offending fields by their payload names.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, fe.Field())
		}

		return domainerrors.ErrValidationFailed.WrapMessage("invalid fields: " + strings.Join(fields, ", "))
	}

	return domainerrors.ErrValidationFailed
}
