package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/internal/domain/entity"
)

// CreateTransactionInput carries the fields the Transaction service needs
// to record a purchase. Title and price are snapshots captured by the
// gateway at creation time.
type CreateTransactionInput struct {
	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	ItemID        uuid.UUID
	OrderType     string
	TitleSnapshot string
	PriceSnapshot decimal.Decimal
}

// TransactionFilter selects transactions by party; uuid.Nil means unset.
type TransactionFilter struct {
	BuyerID  uuid.UUID
	SellerID uuid.UUID
}

// TransactionClient wraps the Transaction service endpoints the gateway
// depends on, wallets included.
type TransactionClient interface {
	ListWallets(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error)
	CreateWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)
	Deposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*entity.Wallet, error)

	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*entity.TransactionRecord, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*entity.TransactionRecord, error)
	Checkout(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error)
}
