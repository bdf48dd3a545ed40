// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the composite view of a purchase, embedding buyer, seller
// and the purchased item. TitleSnapshot and PriceSnapshot are captured at
// creation time and never recomputed from the current item.
type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Buyer         *Profile        `json:"buyer"`
	Seller        *Profile        `json:"seller"`
	Item          *Item           `json:"item"`
	OrderType     string          `json:"order_type"`
	TitleSnapshot string          `json:"title_snapshot"`
	PriceSnapshot decimal.Decimal `json:"price_snapshot"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionRecord is the raw transaction row as the Transaction service
// stores it, before the gateway composes the embedded views.
type TransactionRecord struct {
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
