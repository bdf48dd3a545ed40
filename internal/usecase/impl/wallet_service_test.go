package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"
)

type walletServiceFixtures struct {
	service  usecase.WalletUsecase
	txClient *mockTransactionClient
}

func createTestWalletService(t *testing.T) walletServiceFixtures {
	txClient := newMockTransactionClient(t)
	service := NewWalletService(txClient, newDiscardLogger())

	return walletServiceFixtures{
		service:  service,
		txClient: txClient,
	}
}

func TestWalletService_EnsureWallet_Existing(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Wallet{ID: uuid.New(), UserID: userID, Balance: decimal.RequireFromString("42.50")}

	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{existing}, nil).Once()

	wallet, err := fx.service.EnsureWallet(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, existing, wallet)
	fx.txClient.AssertNotCalled(t, "CreateWallet", ctx, userID)
}

func TestWalletService_EnsureWallet_CreatesWhenAbsent(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	created := &entity.Wallet{ID: uuid.New(), UserID: userID, Balance: decimal.Zero}

	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{}, nil).Once()
	fx.txClient.On("CreateWallet", ctx, userID).Return(created, nil).Once()

	wallet, err := fx.service.EnsureWallet(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, created, wallet)
}

func TestWalletService_EnsureWallet_RecoversLostCreationRace(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	winner := &entity.Wallet{ID: uuid.New(), UserID: userID, Balance: decimal.Zero}

	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{}, nil).Once()
	fx.txClient.On("CreateWallet", ctx, userID).Return(nil, client.ErrConflict).Once()
	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{winner}, nil).Once()

	wallet, err := fx.service.EnsureWallet(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, winner, wallet)
}

func TestWalletService_EnsureWallet_ConflictWithoutWalletFails(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{}, nil).Once()
	fx.txClient.On("CreateWallet", ctx, userID).Return(nil, client.ErrConflict).Once()
	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{}, nil).Once()

	wallet, err := fx.service.EnsureWallet(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, wallet)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrWalletProvisioningFailed.ErrorCode(), appErr.ErrorCode())
}

func TestWalletService_EnsureWallet_QueryFailureSurfaces(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	backendErr := errors.New("connection refused")

	fx.txClient.On("ListWallets", ctx, userID).Return(nil, backendErr).Once()

	wallet, err := fx.service.EnsureWallet(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, wallet)
	assert.ErrorIs(t, err, backendErr)
}

func TestWalletService_Deposit_KeepsDecimalExactness(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	amount := decimal.RequireFromString("10.10")

	fx.txClient.On("ListWallets", ctx, userID).
		Return([]*entity.Wallet{{ID: walletID, UserID: userID, Balance: decimal.RequireFromString("10.10")}}, nil).Once()
	fx.txClient.On("Deposit", ctx, walletID, amount).
		Return(&entity.Wallet{ID: walletID, UserID: userID, Balance: decimal.RequireFromString("20.20")}, nil).Once()

	wallet, err := fx.service.Deposit(ctx, userID, amount)

	require.NoError(t, err)
	assert.Equal(t, "20.20", wallet.Balance.StringFixed(2))
	assert.True(t, wallet.Balance.Equal(decimal.RequireFromString("20.2")))
}

func TestWalletService_Deposit_ProvisionsWalletFirst(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()
	walletID := uuid.New()
	amount := decimal.RequireFromString("5.25")

	fx.txClient.On("ListWallets", ctx, userID).Return([]*entity.Wallet{}, nil).Once()
	fx.txClient.On("CreateWallet", ctx, userID).
		Return(&entity.Wallet{ID: walletID, UserID: userID, Balance: decimal.Zero}, nil).Once()
	fx.txClient.On("Deposit", ctx, walletID, amount).
		Return(&entity.Wallet{ID: walletID, UserID: userID, Balance: amount}, nil).Once()

	wallet, err := fx.service.Deposit(ctx, userID, amount)

	require.NoError(t, err)
	assert.Equal(t, "5.25", wallet.Balance.StringFixed(2))
}

func TestWalletService_Deposit_RejectsNonPositiveAmount(t *testing.T) {
	fx := createTestWalletService(t)

	ctx := context.Background()
	userID := uuid.New()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.RequireFromString("-5")} {
		wallet, err := fx.service.Deposit(ctx, userID, amount)

		require.Error(t, err)
		assert.Nil(t, wallet)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}

	fx.txClient.AssertNotCalled(t, "ListWallets", ctx, userID)
}
