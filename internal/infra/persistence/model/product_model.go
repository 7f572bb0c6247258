// Package model contains the GORM-specific structs that mirror the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// AvgRating and ReviewCount are denormalized aggregates maintained by the
// review repository whenever a review is written.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	SalePrice   *float64  `gorm:"type:decimal(10,2)"`
	Stock       int       `gorm:"not null;default:0"`
	Category    string    `gorm:"type:varchar(100);index"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	AvgRating   float64   `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount int       `gorm:"not null;default:0"`
	IsFeatured  bool      `gorm:"not null;default:false;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	Reviews []ReviewModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
