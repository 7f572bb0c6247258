package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderTrackingQR generates a QR code pointing at an order's tracking page
	GenerateOrderTrackingQR(orderID uuid.UUID) ([]byte, error)

	// ParseOrderTrackingQR parses QR code data and returns the order ID
	ParseOrderTrackingQR(qrData string) (uuid.UUID, error)
}
