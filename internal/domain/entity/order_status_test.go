package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus_RecognizedValues(t *testing.T) {
	for _, raw := range []string{
		"pending", "processing", "shipped", "out_for_delivery", "delivered", "cancelled",
	} {
		t.Run(raw, func(t *testing.T) {
			status, err := ParseOrderStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, OrderStatus(raw), status)
		})
	}
}

func TestParseOrderStatus_RejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"", "refunded", "PENDING", "in_transit"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseOrderStatus(raw)
			assert.ErrorIs(t, err, ErrUnknownOrderStatus)
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusShipped.IsTerminal())
}

func TestOrderStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to processing", OrderStatusPending, OrderStatusProcessing, true},
		{"processing to shipped", OrderStatusProcessing, OrderStatusShipped, true},
		{"shipped skips ahead to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"replayed transition does not regress", OrderStatusShipped, OrderStatusProcessing, false},
		{"same status is not a transition", OrderStatusProcessing, OrderStatusProcessing, false},
		{"out for delivery back to pending", OrderStatusOutForDelivery, OrderStatusPending, false},
		{"cancel from pending", OrderStatusPending, OrderStatusCancelled, true},
		{"cancel from out for delivery", OrderStatusOutForDelivery, OrderStatusCancelled, true},
		{"delivered is locked", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is locked", OrderStatusCancelled, OrderStatusProcessing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestTracking_Shipped(t *testing.T) {
	steps := OrderStatusShipped.Tracking()
	require.Len(t, steps, 5)

	// steps 0-2 are done, step 2 is the active one, 3-4 remain pending
	for i, step := range steps {
		assert.Equal(t, i <= 2, step.Done, "step %d done", i)
		assert.Equal(t, i == 2, step.Active, "step %d active", i)
	}
	assert.Equal(t, OrderStatusShipped, steps[2].Status)
	assert.Equal(t, "Shipped", steps[2].Label)
}

func TestTracking_Pending(t *testing.T) {
	steps := OrderStatusPending.Tracking()
	require.Len(t, steps, 5)

	assert.True(t, steps[0].Done)
	assert.True(t, steps[0].Active)
	for _, step := range steps[1:] {
		assert.False(t, step.Done)
		assert.False(t, step.Active)
	}
}

func TestTracking_Delivered(t *testing.T) {
	steps := OrderStatusDelivered.Tracking()
	require.Len(t, steps, 5)

	for _, step := range steps {
		assert.True(t, step.Done)
	}
	assert.True(t, steps[4].Active)
}

func TestTracking_CancelledSuppressesTimeline(t *testing.T) {
	assert.Nil(t, OrderStatusCancelled.Tracking())
}

func TestOrder_ShortCode(t *testing.T) {
	id, err := uuid.Parse("a1b2c3d4-0000-0000-0000-000000000000")
	require.NoError(t, err)
	order := &Order{ID: id}

	assert.Equal(t, "A1B2C3D4", order.ShortCode())
}
