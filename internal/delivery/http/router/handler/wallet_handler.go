package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"
)

// DepositRequest carries the amount to credit to the caller's wallet.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// WalletHandler holds dependencies for wallet-related handlers.
type WalletHandler struct {
	uc     usecase.WalletUsecase
	logger *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetWallet returns the caller's wallet, provisioning it on first access.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	wallet, err := h.uc.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wallet, "wallet retrieved")
}

// Deposit credits funds to the caller's wallet.
func (h *WalletHandler) Deposit(c echo.Context) error {
	userID, _, ok := currentUser(c)
	if !ok {
		return unauthenticated(c)
	}

	var req *DepositRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "invalid deposit input")
	}

	wallet, err := h.uc.Deposit(c.Request().Context(), userID, req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, wallet, "deposit applied")
}
