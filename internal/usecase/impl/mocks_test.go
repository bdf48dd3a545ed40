package impl

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"
)

// Hand-written testify mocks for the backend client and service interfaces.
// Each constructor registers AssertExpectations as a test cleanup.

type mockUserClient struct {
	mock.Mock
}

func newMockUserClient(t *testing.T) *mockUserClient {
	m := &mockUserClient{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockUserClient) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserClient) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserClient) CreateUser(ctx context.Context, input *client.CreateUserInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserClient) UpdateUser(ctx context.Context, id uuid.UUID, input *client.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserClient) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserClient) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Address), args.Error(1)
}

func (m *mockUserClient) CreateAddress(ctx context.Context, input *client.UpsertAddressInput) (*entity.Address, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

func (m *mockUserClient) UpdateAddress(ctx context.Context, id uuid.UUID, input *client.UpsertAddressInput) (*entity.Address, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Address), args.Error(1)
}

type mockListingClient struct {
	mock.Mock
}

func newMockListingClient(t *testing.T) *mockListingClient {
	m := &mockListingClient{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockListingClient) ListItems(ctx context.Context) ([]*entity.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Item), args.Error(1)
}

func (m *mockListingClient) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *mockListingClient) CreateItem(ctx context.Context, input *client.CreateItemInput) (*entity.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *mockListingClient) UpdateItem(ctx context.Context, id uuid.UUID, input *client.UpdateItemInput) (*entity.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *mockListingClient) DeleteItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockListingClient) CreateMedia(ctx context.Context, input *client.CreateMediaInput) (*entity.Media, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Media), args.Error(1)
}

type mockTransactionClient struct {
	mock.Mock
}

func newMockTransactionClient(t *testing.T) *mockTransactionClient {
	m := &mockTransactionClient{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockTransactionClient) ListWallets(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Wallet), args.Error(1)
}

func (m *mockTransactionClient) CreateWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *mockTransactionClient) Deposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*entity.Wallet, error) {
	args := m.Called(ctx, walletID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *mockTransactionClient) CreateTransaction(ctx context.Context, input *client.CreateTransactionInput) (*entity.TransactionRecord, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TransactionRecord), args.Error(1)
}

func (m *mockTransactionClient) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TransactionRecord), args.Error(1)
}

func (m *mockTransactionClient) ListTransactions(ctx context.Context, filter client.TransactionFilter) ([]*entity.TransactionRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.TransactionRecord), args.Error(1)
}

func (m *mockTransactionClient) Checkout(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.TransactionRecord), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func newMockTokenService(t *testing.T) *mockTokenService {
	m := &mockTokenService{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockTokenService) GenerateToken(userID uuid.UUID, role entity.Role) (string, error) {
	args := m.Called(userID, role)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *mockTokenService) AccessTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockMediaStore struct {
	mock.Mock
}

func newMockMediaStore(t *testing.T) *mockMediaStore {
	m := &mockMediaStore{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockMediaStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)

	return args.String(0), args.Error(1)
}

type mockProfileUsecase struct {
	mock.Mock
}

func newMockProfileUsecase(t *testing.T) *mockProfileUsecase {
	m := &mockProfileUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *mockProfileUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

type mockWalletUsecase struct {
	mock.Mock
}

func newMockWalletUsecase(t *testing.T) *mockWalletUsecase {
	m := &mockWalletUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *mockWalletUsecase) EnsureWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *mockWalletUsecase) GetWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *mockWalletUsecase) Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.Wallet, error) {
	args := m.Called(ctx, userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}
