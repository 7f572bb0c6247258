// Package impl contains the implementation of the application's business logic.
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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BrowseProducts retrieves products matching the given filters.
func (srv *catalogService) BrowseProducts(ctx context.Context, input usecase.BrowseProductsInput) (*usecase.ProductListOutput, error) {
	filter := repository.ProductFilter{
		Search:       input.Search,
		Category:     input.Category,
		MinPrice:     input.MinPrice,
		MaxPrice:     input.MaxPrice,
		FeaturedOnly: input.FeaturedOnly,
		InStockOnly:  input.InStockOnly,
		Sort:         usecase.ParseSortKey(input.Sort),
	}

	products, total, err := srv.productRepo.ListProducts(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Products: products, Total: total}, nil
}

// GetProduct retrieves a single product with related products from the same category.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetailOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	related, err := srv.productRepo.FindRelated(ctx, product.Category, product.ID, usecase.RelatedProductLimit)
	if err != nil {
		// A detail view without related products is still useful.
		srv.log(ctx).Warn("Failed to load related products", slog.Any("productID", productID), slog.Any("error", err))
		related = nil
	}

	return &usecase.ProductDetailOutput{Product: product, Related: related}, nil
}

// ListCategories retrieves all catalog categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.productRepo.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
