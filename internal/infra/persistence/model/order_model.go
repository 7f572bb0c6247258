package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// Items and ShippingAddress are JSONB snapshots frozen at checkout; the rows
// are append-only except for the status column.
type OrderModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending'"`
	SubtotalAmount  float64        `gorm:"type:decimal(10,2);not null"`
	ShippingAmount  float64        `gorm:"type:decimal(10,2);not null"`
	TotalAmount     float64        `gorm:"type:decimal(10,2);not null"`
	ShippingAddress datatypes.JSON `gorm:"type:jsonb;not null"`
	Items           datatypes.JSON `gorm:"type:jsonb;not null"`
	PaymentMethod   string         `gorm:"type:varchar(50)"`
	CreatedAt       time.Time      `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
