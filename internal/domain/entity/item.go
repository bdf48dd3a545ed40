// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a listing view sourced from the Listing service. SellerID is
// resolved by the gateway when the backend record does not carry an owner
// field of its own; when it does, the backend value is authoritative.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Condition   string          `json:"condition"`
	Category    *Category       `json:"category,omitempty"`
	Media       []Media         `json:"media"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// Category is a listing category.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// Media is a single media attachment of an item, ordered within the item.
type Media struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	AltText   string    `json:"alt_text,omitempty"`
	IsPrimary bool      `json:"is_primary"`
}
