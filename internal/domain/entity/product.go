// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalog record. It is owned by catalog management and is
// read-only from the commerce engine's perspective; the engine only ever
// derives prices from it or snapshots it into an order line.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the product.
	Name        string    // Display name, also snapshotted into order lines.
	Description string    // Long-form description for the detail view.
	Price       float64   // Base price, always >= 0.
	SalePrice   *float64  // Optional promotional price; when present it must be below Price.
	Stock       int       // Units on hand; 0 means out of stock.
	Category    string    // Optional category name; empty when uncategorized.
	ImageURL    string    // Primary image location.
	AvgRating   float64   // Derived mean of review ratings, 0-5.
	ReviewCount int       // Derived number of reviews.
	IsFeatured  bool      // Featured placement flag.
	CreatedAt   time.Time // Used for the "newest" catalog ordering.
	UpdatedAt   time.Time // Timestamp of the last catalog mutation.
}

// OnSale reports whether the product currently carries a usable sale price.
func (p *Product) OnSale() bool {
	return p.SalePrice != nil && *p.SalePrice > 0
}

// Category is a catalog grouping used by shop filters.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
