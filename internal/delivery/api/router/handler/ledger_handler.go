package handler

import (
	"log/slog"
	"net/http"

	"hosting/internal/delivery/api/middleware"
	"hosting/internal/delivery/api/response"
	"hosting/internal/domain/entity"
	domainerrors "hosting/internal/domain/errors"
	"hosting/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// LedgerHandlerParams holds dependencies for LedgerHandler, injected by Fx.
type LedgerHandlerParams struct {
	fx.In

	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// LedgerHandler serves the services list and the cart of the authorized account.
type LedgerHandler struct {
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewLedgerHandler is the constructor for LedgerHandler.
func NewLedgerHandler(params LedgerHandlerParams) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// AddItemRequest is the body of POST /users/services and POST /users/cart.
type AddItemRequest struct {
	ServiceID string          `json:"serviceId" validate:"required,max=128"`
	Price     decimal.Decimal `json:"price" validate:"gte=0,lt=10000000000,maxdecimals=2"`
	Duration  int             `json:"duration" validate:"gte=0"`
}

// ItemResponse is a ledger item as returned by the add endpoints.
type ItemResponse struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"serviceId"`
	Price     decimal.Decimal `json:"price"`
	Duration  int             `json:"duration"`
}

// ServiceEntry is one element of GET /users/services.
type ServiceEntry struct {
	ID        string `json:"id"`
	ServiceID string `json:"serviceId"`
	Duration  int    `json:"duration"`
}

// CartEntry is one element of GET /users/cart.
type CartEntry struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"serviceId"`
	Price     decimal.Decimal `json:"price"`
}

func (h *LedgerHandler) AddService(c echo.Context) error {
	return h.addItem(c, entity.LedgerKindServices)
}

func (h *LedgerHandler) ListServices(c echo.Context) error {
	items, err := h.listItems(c, entity.LedgerKindServices)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entries := make([]ServiceEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, ServiceEntry{ID: item.ID, ServiceID: item.ServiceID, Duration: item.Duration})
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *LedgerHandler) RemoveService(c echo.Context) error {
	return h.removeItem(c, entity.LedgerKindServices, "Service removed successfully")
}

func (h *LedgerHandler) AddCartItem(c echo.Context) error {
	return h.addItem(c, entity.LedgerKindCart)
}

func (h *LedgerHandler) ListCart(c echo.Context) error {
	items, err := h.listItems(c, entity.LedgerKindCart)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	entries := make([]CartEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, CartEntry{ID: item.ID, ServiceID: item.ServiceID, Price: item.Price})
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *LedgerHandler) RemoveCartItem(c echo.Context) error {
	return h.removeItem(c, entity.LedgerKindCart, "Item removed successfully")
}

func (h *LedgerHandler) addItem(c echo.Context, kind entity.LedgerKind) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid item input", nil)
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.ledgerUC.AddItem(c.Request().Context(), accountID, kind, &usecase.AddItemInput{
		ServiceID: req.ServiceID,
		Price:     req.Price,
		Duration:  req.Duration,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, ItemResponse{
		ID:        item.ID,
		ServiceID: item.ServiceID,
		Price:     item.Price,
		Duration:  item.Duration,
	})
}

func (h *LedgerHandler) listItems(c echo.Context, kind entity.LedgerKind) ([]entity.LedgerItem, error) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return h.ledgerUC.ListItems(c.Request().Context(), accountID, kind)
}

func (h *LedgerHandler) removeItem(c echo.Context, kind entity.LedgerKind, message string) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.ledgerUC.RemoveItem(c.Request().Context(), accountID, kind, c.Param("itemId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, message)
}
