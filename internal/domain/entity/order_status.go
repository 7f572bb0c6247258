package entity

import "github.com/pkg/errors"

// OrderStatus is the fulfillment state of an order. Fulfillment moves strictly
// forward through the five tracked states; cancelled is an absorbing state
// reachable from any non-terminal state. Transitions are performed by an
// external fulfillment process, the engine only validates and interprets the
// stored value.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// orderSteps is the forward fulfillment sequence, in order. Cancelled is not a
// step, it suppresses the timeline entirely.
var orderSteps = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// stepLabels are the human-facing names shown on the tracking timeline.
var stepLabels = map[OrderStatus]string{
	OrderStatusPending:        "Order Placed",
	OrderStatusProcessing:     "Processing",
	OrderStatusShipped:        "Shipped",
	OrderStatusOutForDelivery: "Out for Delivery",
	OrderStatusDelivered:      "Delivered",
}

// ErrUnknownOrderStatus is returned when a stored or supplied status is not
// one of the six recognized values.
var ErrUnknownOrderStatus = errors.New("unknown order status")

// ParseOrderStatus validates a raw status string against the recognized set.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch s := OrderStatus(raw); s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled:
		return s, nil
	default:
		return "", errors.Wrapf(ErrUnknownOrderStatus, "status %q", raw)
	}
}

// IsTerminal reports whether the status has no outgoing transition.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// stepIndex is the status' position in the forward sequence, -1 for cancelled.
func (s OrderStatus) stepIndex() int {
	for i, step := range orderSteps {
		if step == s {
			return i
		}
	}

	return -1
}

// CanAdvanceTo reports whether fulfillment may move an order from s to next.
// The tracked sequence only moves forward; cancelled is reachable from any
// non-terminal status. Repeating the current status or stepping backwards is
// never allowed, so a replayed transition cannot regress an order.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	return next.stepIndex() > s.stepIndex()
}

// TrackingStep is one rendered step of the fulfillment timeline. The current
// step is both done and active; steps past the current one are neither.
type TrackingStep struct {
	Status OrderStatus `json:"status"`
	Label  string      `json:"label"`
	Done   bool        `json:"done"`
	Active bool        `json:"active"`
}

// Tracking renders the fulfillment timeline for the status: every step at or
// before the current one is done, the current one is additionally active, and
// later steps are pending. A cancelled order has no timeline and returns nil.
func (s OrderStatus) Tracking() []TrackingStep {
	if s == OrderStatusCancelled {
		return nil
	}

	current := s.stepIndex()

	steps := make([]TrackingStep, 0, len(orderSteps))
	for i, step := range orderSteps {
		steps = append(steps, TrackingStep{
			Status: step,
			Label:  stepLabels[step],
			Done:   i <= current,
			Active: i == current,
		})
	}

	return steps
}
