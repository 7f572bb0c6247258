package impl

import (
	"context"
	"log/slog"

	deliverycontext "luxe/internal/delivery/context"
	"luxe/internal/domain/entity"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/domain/repository"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips a product's wishlist membership and reports whether the
// product is now wishlisted.
func (srv *wishlistService) Toggle(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, domainerrors.ErrUnauthenticated
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, domainerrors.ErrProductNotFound
		}

		return false, errors.Wrap(err, "failed to find product")
	}

	ids, err := srv.wishlistRepo.FindProductIDs(ctx, userID)
	if err != nil {
		return false, errors.Wrap(err, "failed to load wishlist")
	}

	for _, id := range ids {
		if id == productID {
			if err := srv.wishlistRepo.Remove(ctx, userID, productID); err != nil {
				return false, errors.Wrap(err, "failed to remove wishlist entry")
			}
			srv.log(ctx).Debug("Removed product from wishlist", slog.Any("userID", userID), slog.Any("productID", productID))

			return false, nil
		}
	}

	if err := srv.wishlistRepo.Add(ctx, userID, productID); err != nil {
		return false, errors.Wrap(err, "failed to add wishlist entry")
	}
	srv.log(ctx).Debug("Added product to wishlist", slog.Any("userID", userID), slog.Any("productID", productID))

	return true, nil
}

// ListProductIDs retrieves the product IDs in the user's wishlist.
func (srv *wishlistService) ListProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	ids, err := srv.wishlistRepo.FindProductIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return ids, nil
}

// ListProducts retrieves the full products in the user's wishlist.
func (srv *wishlistService) ListProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	if userID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	products, err := srv.wishlistRepo.FindProducts(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist products")
	}

	return products, nil
}
