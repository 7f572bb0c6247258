package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is an immutable snapshot of a cart taken at checkout. Its lines carry
// the product name and effective unit price as they were at placement time;
// later catalog changes never alter a placed order. Only Status moves after
// creation, driven by an external fulfillment process.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Status          OrderStatus
	SubtotalAmount  float64 // Sum of line price x quantity at placement.
	ShippingAmount  float64 // Shipping charged at placement.
	TotalAmount     float64 // Subtotal + shipping.
	ShippingAddress ShippingAddress
	Items           []OrderItem // Frozen copies, never references to live cart lines.
	PaymentMethod   string      // Stored verbatim; no authorization happens here.
	CreatedAt       time.Time
}

// ShortCode is the human-facing order reference used in notifications,
// the first eight characters of the id, upper-cased.
func (o *Order) ShortCode() string {
	id := o.ID.String()
	if len(id) < 8 {
		return strings.ToUpper(id)
	}

	return strings.ToUpper(id[:8])
}

// OrderItem is one frozen line of an order snapshot.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"` // Effective unit price at placement.
	Quantity  int       `json:"quantity"`
}

// ShippingAddress is the structured address snapshot stored on an order.
type ShippingAddress struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
}
