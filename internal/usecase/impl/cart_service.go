package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"luxe/config"
	deliverycontext "luxe/internal/delivery/context"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/pricing"
	"luxe/internal/domain/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
// Mutations are serialized per user to prevent lost updates when two
// add-to-cart calls for the same product overlap.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	rules       pricing.Rules
	userLocks   sync.Map // uuid.UUID -> *sync.Mutex
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	CouponRepo  repository.CouponRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	rules := pricing.DefaultRules()
	if params.Config != nil && params.Config.Pricing != nil {
		rules = pricing.Rules{
			FreeShippingThreshold: params.Config.Pricing.FreeShippingThreshold,
			FlatShippingRate:      params.Config.Pricing.FlatShippingRate,
		}
	}

	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		couponRepo:  params.CouponRepo,
		rules:       rules,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// lockUser serializes cart mutations for a single user. The returned
// function releases the lock.
func (srv *cartService) lockUser(userID uuid.UUID) func() {
	mu, _ := srv.userLocks.LoadOrStore(userID, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()

	return lock.Unlock
}

// GetCart retrieves the user's cart with derived totals.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return srv.loadCartView(ctx, userID)
}

// AddItem adds a product to the cart, merging quantities when the product
// is already present.
func (srv *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}

	unlock := srv.lockUser(userID)
	defer unlock()

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	existing, err := srv.cartRepo.FindItem(ctx, userID, productID)
	switch {
	case err == nil:
		if err := srv.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return nil, errors.Wrap(err, "failed to merge cart item quantity")
		}
	case errors.Is(err, repository.ErrCartItemNotFound):
		item := &entity.CartItem{
			ID:        uuid.New(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := srv.cartRepo.CreateItem(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to create cart item")
		}
	default:
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	srv.log(ctx).Debug("Added product to cart", slog.Any("userID", userID), slog.Any("productID", productID), slog.Int("quantity", quantity))

	return srv.loadCartView(ctx, userID)
}

// UpdateItemQuantity sets a cart line's quantity. A quantity of zero or
// less removes the line.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*usecase.CartView, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if quantity <= 0 {
		return srv.RemoveItem(ctx, userID, itemID)
	}

	unlock := srv.lockUser(userID)
	defer unlock()

	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}
	if item.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item quantity")
	}

	return srv.loadCartView(ctx, userID)
}

// RemoveItem deletes a cart line. Removing an already-removed line is not an error.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*usecase.CartView, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	unlock := srv.lockUser(userID)
	defer unlock()

	item, err := srv.cartRepo.FindItemByID(ctx, itemID)
	switch {
	case err == nil:
		if item.UserID != userID {
			return nil, domainerrors.ErrForbidden
		}
		if err := srv.cartRepo.DeleteItem(ctx, itemID); err != nil {
			return nil, errors.Wrap(err, "failed to delete cart item")
		}
	case errors.Is(err, repository.ErrCartItemNotFound):
		// Already gone, likely a concurrent removal.
	default:
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return srv.loadCartView(ctx, userID)
}

// ClearCart removes every line from the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	unlock := srv.lockUser(userID)
	defer unlock()

	if err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// ApplyCoupon validates a coupon code against the current cart and returns
// the discounted totals. The cart itself is never modified.
func (srv *cartService) ApplyCoupon(ctx context.Context, userID uuid.UUID, code string) (*usecase.CouponQuote, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, domainerrors.ErrInvalidCoupon
	}

	coupon, err := srv.couponRepo.FindActiveByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrInvalidCoupon
		}

		return nil, errors.Wrap(err, "failed to find coupon")
	}

	view, err := srv.loadCartView(ctx, userID)
	if err != nil {
		return nil, err
	}

	discount := pricing.CouponDiscount(view.Subtotal, coupon)
	shipping := srv.rules.ShippingCost(view.Subtotal)

	return &usecase.CouponQuote{
		Code:     coupon.Code,
		Subtotal: view.Subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    srv.rules.FinalTotal(view.Subtotal, discount),
	}, nil
}

// loadCartView reloads the full cart state and recomputes derived totals.
func (srv *cartService) loadCartView(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	view := &usecase.CartView{Items: items}
	for _, item := range items {
		view.Count += item.Quantity
		if item.Product != nil {
			view.Subtotal += pricing.EffectivePrice(item.Product) * float64(item.Quantity)
		}
	}
	view.Subtotal = pricing.RoundCents(view.Subtotal)

	return view, nil
}
