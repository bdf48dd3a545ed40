package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/config"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
)

// transactionClient adapts the Transaction service wire format, wallets
// included, to composite entities.
type transactionClient struct {
	rest *restClient
}

// NewTransactionClient is the constructor for the Transaction service adapter.
func NewTransactionClient(cfg *config.Config) client.TransactionClient {
	return &transactionClient{
		rest: newRESTClient("transaction", cfg.Services.TransactionURL, cfg),
	}
}

type walletPayload struct {
	ID      uuid.UUID       `json:"id"`
	UserID  uuid.UUID       `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

func (p *walletPayload) toEntity() *entity.Wallet {
	return &entity.Wallet{
		ID:      p.ID,
		UserID:  p.UserID,
		Balance: p.Balance,
	}
}

type transactionPayload struct {
	ID            uuid.UUID       `json:"id"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	SellerID      uuid.UUID       `json:"seller_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	OrderType     string          `json:"order_type"`
	TitleSnapshot string          `json:"title_snapshot"`
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (p *transactionPayload) toEntity() *entity.TransactionRecord {
	return &entity.TransactionRecord{
		ID:            p.ID,
		BuyerID:       p.BuyerID,
		SellerID:      p.SellerID,
		ItemID:        p.ItemID,
		OrderType:     p.OrderType,
		TitleSnapshot: p.TitleSnapshot,
		PriceSnapshot: p.PriceSnapshot,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

func (c *transactionClient) ListWallets(ctx context.Context, userID uuid.UUID) ([]*entity.Wallet, error) {
	query := url.Values{}
	query.Set("user_id", userID.String())

	var payloads []walletPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/wallets", query, nil, &payloads); err != nil {
		return nil, err
	}

	wallets := make([]*entity.Wallet, len(payloads))
	for i := range payloads {
		wallets[i] = payloads[i].toEntity()
	}

	return wallets, nil
}

func (c *transactionClient) CreateWallet(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error) {
	body := map[string]any{"user_id": userID.String()}

	var payload walletPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/wallets", nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *transactionClient) Deposit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (*entity.Wallet, error) {
	body := map[string]any{"amount": amount}

	var payload walletPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/wallets/"+walletID.String()+"/deposit", nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *transactionClient) CreateTransaction(ctx context.Context, input *client.CreateTransactionInput) (*entity.TransactionRecord, error) {
	body := map[string]any{
		"buyer_id":       input.BuyerID.String(),
		"seller_id":      input.SellerID.String(),
		"item_id":        input.ItemID.String(),
		"order_type":     input.OrderType,
		"title_snapshot": input.TitleSnapshot,
		"price_snapshot": input.PriceSnapshot,
	}

	var payload transactionPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/transactions", nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *transactionClient) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error) {
	var payload transactionPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/transactions/"+id.String(), nil, nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *transactionClient) ListTransactions(ctx context.Context, filter client.TransactionFilter) ([]*entity.TransactionRecord, error) {
	query := url.Values{}
	if filter.BuyerID != uuid.Nil {
		query.Set("buyer_id", filter.BuyerID.String())
	}
	if filter.SellerID != uuid.Nil {
		query.Set("seller_id", filter.SellerID.String())
	}

	var payloads []transactionPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/transactions", query, nil, &payloads); err != nil {
		return nil, err
	}

	records := make([]*entity.TransactionRecord, len(payloads))
	for i := range payloads {
		records[i] = payloads[i].toEntity()
	}

	return records, nil
}

func (c *transactionClient) Checkout(ctx context.Context, id uuid.UUID) (*entity.TransactionRecord, error) {
	var payload transactionPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/transactions/"+id.String()+"/checkout", nil, nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}
