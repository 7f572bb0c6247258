package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateOrderTrackingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://shop.example.com")
	orderID := uuid.New()

	qrBytes, err := service.GenerateOrderTrackingQR(orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateOrderTrackingQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "")
			orderID := uuid.New()

			qrBytes, err := service.GenerateOrderTrackingQR(orderID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseOrderTrackingQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	orderID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		OrderID: orderID.String(),
		Type:    "order_tracking",
	})
	require.NoError(t, err)

	parsed, err := service.ParseOrderTrackingQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, orderID, parsed)
}

func TestQRCodeService_ParseOrderTrackingQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	payload, err := json.Marshal(QRCodeData{
		OrderID: uuid.New().String(),
		Type:    "subscription",
	})
	require.NoError(t, err)

	_, err = service.ParseOrderTrackingQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseOrderTrackingQR_MalformedPayloads(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	for _, payload := range []string{"", "not-json", `{"order_id":"nope","type":"order_tracking"}`} {
		_, err := service.ParseOrderTrackingQR(payload)
		assert.Error(t, err)
	}
}
