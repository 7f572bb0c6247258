package impl

import (
	"io"
	"log/slog"

	"luxe/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Pricing: &config.PricingConfig{
			FreeShippingThreshold: 50,
			FlatShippingRate:      9.99,
		},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
