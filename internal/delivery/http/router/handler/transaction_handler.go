package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	uc     usecase.TransactionUsecase
	logger *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(uc usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListMine returns the caller's transactions for one side of the trade.
// The ?role= query parameter selects buyer or seller, defaulting to buyer.
func (h *TransactionHandler) ListMine(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	records, err := h.uc.ListMine(c.Request().Context(), userID, c.QueryParam("role"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "transactions retrieved")
}

// Get returns a composed transaction view to one of its parties.
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "invalid transaction id")
	}

	tx, err := h.uc.Get(c.Request().Context(), userID, txID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "transaction retrieved")
}

// Create starts a purchase of the given item by the caller.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var input *usecase.CreateTransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "invalid transaction input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	tx, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tx, "transaction created")
}

// Checkout settles a transaction on behalf of its buyer.
func (h *TransactionHandler) Checkout(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "invalid transaction id")
	}

	tx, err := h.uc.Checkout(c.Request().Context(), userID, txID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tx, "transaction checked out")
}
