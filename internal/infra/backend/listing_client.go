package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bazaar/config"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
)

// listingClient adapts the Listing service wire format to composite entities.
type listingClient struct {
	rest *restClient
}

// NewListingClient is the constructor for the Listing service adapter.
func NewListingClient(cfg *config.Config) client.ListingClient {
	return &listingClient{
		rest: newRESTClient("listing", cfg.Services.ListingURL, cfg),
	}
}

// itemPayload is the Listing service's item representation. OwnerUserID is
// optional: earlier API shapes of the backend do not track ownership, in
// which case the gateway's seller registry fills the gap.
type itemPayload struct {
	ID          uuid.UUID        `json:"id"`
	OwnerUserID *uuid.UUID       `json:"owner_user_id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Status      string           `json:"status"`
	Condition   string           `json:"condition"`
	Category    *categoryPayload `json:"category"`
	Media       []mediaPayload   `json:"media"`
	CreatedAt   *time.Time       `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at"`
}

type categoryPayload struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

type mediaPayload struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Type      string    `json:"type"`
	AltText   string    `json:"alt_text"`
	IsPrimary bool      `json:"is_primary"`
}

func (p *itemPayload) toEntity() *entity.Item {
	item := &entity.Item{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Status:      p.Status,
		Condition:   p.Condition,
		Media:       make([]entity.Media, len(p.Media)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.OwnerUserID != nil {
		item.SellerID = *p.OwnerUserID
	}
	if p.Category != nil {
		item.Category = &entity.Category{
			ID:          p.Category.ID,
			Name:        p.Category.Name,
			Description: p.Category.Description,
		}
	}
	for i, m := range p.Media {
		item.Media[i] = entity.Media{
			ID:        m.ID,
			URL:       m.URL,
			Type:      m.Type,
			AltText:   m.AltText,
			IsPrimary: m.IsPrimary,
		}
	}

	return item
}

func (c *listingClient) ListItems(ctx context.Context) ([]*entity.Item, error) {
	var payloads []itemPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/items", nil, nil, &payloads); err != nil {
		return nil, err
	}

	items := make([]*entity.Item, len(payloads))
	for i := range payloads {
		items[i] = payloads[i].toEntity()
	}

	return items, nil
}

func (c *listingClient) GetItem(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var payload itemPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/items/"+id.String(), nil, nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *listingClient) CreateItem(ctx context.Context, input *client.CreateItemInput) (*entity.Item, error) {
	mediaRefs := make([]map[string]any, len(input.MediaIDs))
	for i, id := range input.MediaIDs {
		mediaRefs[i] = map[string]any{"id": id.String()}
	}

	body := map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"status":      input.Status,
		"condition":   input.Condition,
		"media":       mediaRefs,
	}
	if input.CategoryID != uuid.Nil {
		body["category"] = map[string]any{"id": input.CategoryID.String()}
	}

	var payload itemPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/items", nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *listingClient) UpdateItem(ctx context.Context, id uuid.UUID, input *client.UpdateItemInput) (*entity.Item, error) {
	body := map[string]any{}
	if input.Name != nil {
		body["name"] = *input.Name
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.Price != nil {
		body["price"] = *input.Price
	}
	if input.Status != nil {
		body["status"] = *input.Status
	}
	if input.Condition != nil {
		body["condition"] = *input.Condition
	}

	var payload itemPayload
	if err := c.rest.doJSON(ctx, http.MethodPatch, "/items/"+id.String(), nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *listingClient) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return c.rest.doJSON(ctx, http.MethodDelete, "/items/"+id.String(), nil, nil, nil)
}

func (c *listingClient) CreateMedia(ctx context.Context, input *client.CreateMediaInput) (*entity.Media, error) {
	body := map[string]any{
		"url":        input.URL,
		"type":       input.Type,
		"alt_text":   input.AltText,
		"is_primary": input.IsPrimary,
	}

	var payload mediaPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/media", nil, body, &payload); err != nil {
		return nil, err
	}

	return &entity.Media{
		ID:        payload.ID,
		URL:       payload.URL,
		Type:      payload.Type,
		AltText:   payload.AltText,
		IsPrimary: payload.IsPrimary,
	}, nil
}
