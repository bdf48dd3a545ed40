package client

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/internal/domain/entity"
)

// CreateItemInput carries the fields the Listing service needs to create
// a listing. The Listing service does not track ownership; the gateway
// records the seller separately.
type CreateItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Status      string
	Condition   string
	CategoryID  uuid.UUID
	MediaIDs    []uuid.UUID
}

// UpdateItemInput carries a partial item update; nil fields are untouched.
type UpdateItemInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Status      *string
	Condition   *string
}

// CreateMediaInput carries the fields for registering a media record.
type CreateMediaInput struct {
	URL       string
	Type      string
	AltText   string
	IsPrimary bool
}

// ListingClient wraps the Listing service endpoints the gateway depends on.
// Items returned by GetItem and ListItems carry SellerID == uuid.Nil when
// the backend record has no owner field of its own.
type ListingClient interface {
	ListItems(ctx context.Context) ([]*entity.Item, error)
	GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	CreateItem(ctx context.Context, input *CreateItemInput) (*entity.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
	CreateMedia(ctx context.Context, input *CreateMediaInput) (*entity.Media, error)
}
