package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"luxe/internal/delivery/http/response"
	"luxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog browsing handlers.
type ProductHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListProducts handles the catalog listing request. All filters arrive as
// query parameters and are optional.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	input := usecase.BrowseProductsInput{
		Search:       c.QueryParam("search"),
		Category:     c.QueryParam("category"),
		FeaturedOnly: c.QueryParam("featured") == "true",
		InStockOnly:  c.QueryParam("in_stock") == "true",
		Sort:         c.QueryParam("sort"),
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "min_price must be a number")
		}
		input.MinPrice = &price
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "max_price must be a number")
		}
		input.MaxPrice = &price
	}

	output, err := h.uc.BrowseProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": output.Products,
		"total":    output.Total,
	}, "")
}

// GetProduct handles the product detail request, including related products.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	output, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product": output.Product,
		"related": output.Related,
	}, "")
}

// ListCategories handles the category listing request.
func (h *ProductHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}
