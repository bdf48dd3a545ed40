package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/internal/domain/entity"
)

// MediaUpload is an optional file attached to item creation.
type MediaUpload struct {
	Filename    string
	ContentType string
	AltText     string
	Content     io.Reader
}

// CreateItemInput carries the fields for listing a new item.
type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Status      string
	Condition   string
	CategoryID  uuid.UUID
	Upload      *MediaUpload
}

// UpdateItemInput carries a partial item update; nil fields are untouched.
type UpdateItemInput struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Status      *string          `json:"status"`
	Condition   *string          `json:"condition"`
}

// ItemUsecase composes listing reads and gates listing mutations on
// ownership.
type ItemUsecase interface {
	// GetItem returns the item with its seller identity resolved. An item
	// whose seller cannot be resolved is returned with a nil seller id.
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// ListItems returns all items, each with its seller resolved where known.
	ListItems(ctx context.Context) ([]*entity.Item, error)

	// CreateItem uploads the optional media, creates the listing and records
	// the item -> seller mapping.
	CreateItem(ctx context.Context, sellerID uuid.UUID, input *CreateItemInput) (*entity.Item, error)

	// UpdateItem forwards a partial update after verifying the caller owns
	// the item.
	UpdateItem(ctx context.Context, callerID, itemID uuid.UUID, input *UpdateItemInput) (*entity.Item, error)

	// DeleteItem removes a listing. The caller must own the item or hold
	// the admin role.
	DeleteItem(ctx context.Context, callerID uuid.UUID, callerRole entity.Role, itemID uuid.UUID) error
}
