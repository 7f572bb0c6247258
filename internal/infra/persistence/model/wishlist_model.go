package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistEntryModel is the GORM-specific struct for the 'wishlist_entries'
// table. The (user, product) pair is the primary key, making the table a set.
type WishlistEntryModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (WishlistEntryModel) TableName() string {
	return "wishlist_entries"
}
