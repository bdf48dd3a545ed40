// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

// walletService implements the WalletUsecase interface.
type walletService struct {
	txClient client.TransactionClient
	logger   *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(
	txClient client.TransactionClient,
	logger *slog.Logger,
) usecase.WalletUsecase {
	return &walletService{
		txClient: txClient,
		logger:   logger,
	}
}

// EnsureWallet implements get-or-create with race recovery. The sequence is
// not atomic against concurrent callers for the same user; a creation that
// loses the race surfaces as a conflict and is recovered by re-querying.
func (srv *walletService) EnsureWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	wallets, err := srv.txClient.ListWallets(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query wallets")
	}
	if len(wallets) > 0 {
		// At most one wallet per user is the backend's invariant; the first
		// result is the wallet.
		return wallets[0], nil
	}

	wallet, err := srv.txClient.CreateWallet(ctx, userID)
	if err == nil {
		srv.log(ctx).Info("wallet provisioned", slog.Any("userID", userID), slog.Any("walletID", wallet.ID))

		return wallet, nil
	}
	if !errors.Is(err, client.ErrConflict) {
		return nil, errors.Wrap(err, "failed to create wallet")
	}

	// Lost the creation race: someone else provisioned the wallet between
	// our query and our create. Their wallet is the wallet.
	wallets, err = srv.txClient.ListWallets(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-query wallets after conflict")
	}
	if len(wallets) == 0 {
		// The backend reported a conflict but holds no wallet; that is a
		// fatal inconsistency, never silently swallowed.
		return nil, domainerrors.ErrWalletProvisioningFailed.WrapMessage(
			"wallet creation conflicted but re-query returned no wallet for user " + userID.String())
	}

	return wallets[0], nil
}

// GetWallet returns the user's wallet, provisioning it first when needed.
func (srv *walletService) GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	return srv.EnsureWallet(ctx, userID)
}

// Deposit credits the amount to the user's wallet, provisioning it first.
func (srv *walletService) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Wallet, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("deposit amount must be positive")
	}

	wallet, err := srv.EnsureWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := srv.txClient.Deposit(ctx, wallet.ID, amount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to deposit")
	}

	srv.log(ctx).Info("deposit applied",
		slog.Any("walletID", wallet.ID),
		slog.String("amount", amount.String()),
		slog.String("balance", updated.Balance.String()),
	)

	return updated, nil
}

func (srv *walletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
