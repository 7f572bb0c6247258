// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"luxe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// SortKey selects the catalog ordering. Unknown keys fall back to SortNewest.
type SortKey string

const (
	SortNewest    SortKey = "newest"     // created_at descending
	SortPriceAsc  SortKey = "price_asc"  // price ascending
	SortPriceDesc SortKey = "price_desc" // price descending
	SortRating    SortKey = "rating"     // avg_rating descending
	SortPopular   SortKey = "popular"    // review_count descending
)

// ProductFilter narrows and orders a catalog listing. Zero values mean
// "no constraint"; price bounds are inclusive.
type ProductFilter struct {
	Search       string   // Case-insensitive substring match on name.
	Category     string   // Exact category match.
	MinPrice     *float64 // Lower price bound, inclusive.
	MaxPrice     *float64 // Upper price bound, inclusive.
	FeaturedOnly bool     // Only featured products.
	InStockOnly  bool     // Only products with stock > 0.
	Sort         SortKey
}

// ProductRepository defines the read-only catalog queries plus the derived
// rating refresh used after review submission.
type ProductRepository interface {
	// ListProducts retrieves products matching the filter along with the
	// total match count.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindRelated retrieves up to limit products sharing a category,
	// excluding the given product.
	FindRelated(ctx context.Context, category string, exclude uuid.UUID, limit int) ([]*entity.Product, error)

	// ListCategories retrieves all catalog categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// RefreshRatingStats recomputes a product's avg_rating and review_count
	// from its full review set.
	RefreshRatingStats(ctx context.Context, productID uuid.UUID) error
}
