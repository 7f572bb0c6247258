// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"luxe/internal/domain/entity"
	"luxe/internal/domain/repository"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// BrowseProductsInput defines the filters for a catalog listing.
// All fields are optional; unset fields do not constrain the result.
type BrowseProductsInput struct {
	Search       string
	Category     string
	MinPrice     *float64
	MaxPrice     *float64
	FeaturedOnly bool
	InStockOnly  bool
	Sort         string
}

// --- Output DTOs ---

// ProductListOutput returns a page of products plus the total match count.
type ProductListOutput struct {
	Products []*entity.Product
	Total    int64
}

// ProductDetailOutput returns a product together with its related products.
type ProductDetailOutput struct {
	Product *entity.Product
	Related []*entity.Product
}

// CatalogUsecase defines the interface for catalog browsing use cases.
type CatalogUsecase interface {
	// BrowseProducts retrieves products matching the given filters.
	// An unrecognized sort key falls back to newest-first.
	BrowseProducts(ctx context.Context, input BrowseProductsInput) (*ProductListOutput, error)

	// GetProduct retrieves a single product with related products from the
	// same category.
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductDetailOutput, error)

	// ListCategories retrieves all catalog categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

// RelatedProductLimit caps the related products returned on a detail view.
const RelatedProductLimit = 4

// ParseSortKey maps a raw sort string to a repository sort key, falling
// back to newest-first for anything unrecognized.
func ParseSortKey(raw string) repository.SortKey {
	switch repository.SortKey(raw) {
	case repository.SortPriceAsc, repository.SortPriceDesc, repository.SortRating, repository.SortPopular:
		return repository.SortKey(raw)
	default:
		return repository.SortNewest
	}
}
