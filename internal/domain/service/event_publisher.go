package service

import (
	"context"
)

// OrderPlacedEvent represents a checkout completion published for async consumers
type OrderPlacedEvent struct {
	RequestID   string  `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string  `json:"order_id"`
	UserID      string  `json:"user_id"`
	ShortCode   string  `json:"short_code"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order placed event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
