package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/internal/domain/entity"
)

// Transaction listing sides.
const (
	TransactionSideBuyer  = "buyer"
	TransactionSideSeller = "seller"
)

// CreateTransactionInput carries the purchase request. The buyer identity
// always comes from the verified session token, never from the payload.
type CreateTransactionInput struct {
	ItemID        uuid.UUID        `json:"item_id" validate:"required"`
	OrderType     string           `json:"order_type" validate:"required"`
	PriceOverride *decimal.Decimal `json:"price_override"`
}

// TransactionUsecase orchestrates composite purchase operations across the
// three backend services.
type TransactionUsecase interface {
	// Create runs the full purchase composition: resolve buyer and item,
	// resolve the seller, ensure both wallets, submit the transaction with
	// title and price snapshots, and return the composed view.
	Create(ctx context.Context, buyerID uuid.UUID, input *CreateTransactionInput) (*entity.Transaction, error)

	// Get returns the composed transaction. Only the buyer or the seller
	// may read it.
	Get(ctx context.Context, callerID, id uuid.UUID) (*entity.Transaction, error)

	// ListMine returns the caller's raw transaction records for one side.
	ListMine(ctx context.Context, userID uuid.UUID, side string) ([]*entity.TransactionRecord, error)

	// Checkout settles the transaction. Only the buyer may check out; on
	// success the purchased listing is deleted best-effort.
	Checkout(ctx context.Context, callerID, id uuid.UUID) (*entity.Transaction, error)
}
