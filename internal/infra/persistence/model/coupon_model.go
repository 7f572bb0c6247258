package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
// Codes are stored upper-cased so the unique constraint doubles as the
// case-insensitive match.
type CouponModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Code          string    `gorm:"type:varchar(50);unique;not null"`
	DiscountType  string    `gorm:"type:varchar(20);not null"`
	DiscountValue float64   `gorm:"type:decimal(10,2);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
