package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/internal/domain/entity"
)

// WalletUsecase provides lazy wallet provisioning and deposits.
type WalletUsecase interface {
	// EnsureWallet returns the user's wallet, creating it when absent.
	// A lost creation race against a concurrent caller is recovered by
	// re-querying; the operation is idempotent from the caller's view.
	EnsureWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// GetWallet returns the user's wallet, provisioning it first when needed.
	GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// Deposit credits the amount to the user's wallet, provisioning the
	// wallet first when needed. The amount must be positive.
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Wallet, error)
}
