// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet holds a user's balance, sourced from the Transaction service.
// Exactly one wallet exists per user; the gateway creates it lazily on
// first access.
type Wallet struct {
	ID      uuid.UUID       `json:"id"`
	UserID  uuid.UUID       `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}
