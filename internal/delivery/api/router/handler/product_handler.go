package handler

import (
	"log/slog"
	"net/http"

	"hosting/internal/delivery/api/response"
	"hosting/internal/domain/entity"
	"hosting/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the product catalog.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest is the body of POST /product.
type CreateProductRequest struct {
	ServiceID   string          `json:"serviceId" validate:"required,max=128"`
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"gte=0,lt=10000000000,maxdecimals=2"`
	Duration    int             `json:"duration" validate:"gte=0"`
}

// UpdateProductRequest is the body of PATCH /product/:serviceId. Absent and
// null fields are left untouched.
type UpdateProductRequest struct {
	ServiceID   *string          `json:"serviceId" validate:"omitempty,min=1,max=128"`
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price" validate:"omitempty,gte=0,lt=10000000000,maxdecimals=2"`
	Duration    *int             `json:"duration" validate:"omitempty,gte=0"`
}

// ListProducts returns the whole catalog.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct adds a product to the catalog.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid product input", nil)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &entity.Product{
		ServiceID:   req.ServiceID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial update to a product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid product input", nil)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), c.Param("serviceId"), entity.ProductUpdate{
		ServiceID:   req.ServiceID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.catalogUC.DeleteProduct(c.Request().Context(), c.Param("serviceId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
