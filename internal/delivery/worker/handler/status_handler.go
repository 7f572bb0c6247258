package handler

import (
	"log/slog"
	"net/http"

	"luxe/internal/delivery/http/response"
	"luxe/internal/domain/entity"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatusHandler exposes the fulfillment status transition endpoint used by
// warehouse tooling. It runs on the worker server, never on the storefront.
type StatusHandler struct {
	orderSvc usecase.OrderUsecase
	logger   *slog.Logger
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(orderSvc usecase.OrderUsecase, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		orderSvc: orderSvc,
		logger:   logger,
	}
}

// updateStatusRequest is the fulfillment transition payload.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an order to a new fulfillment status.
func (h *StatusHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	status, err := entity.ParseOrderStatus(req.Status)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown order status")
	}

	order, err := h.orderSvc.AdvanceStatus(c.Request().Context(), orderID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}
