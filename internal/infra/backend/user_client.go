package backend

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"bazaar/config"
	"bazaar/internal/domain/client"
	"bazaar/internal/domain/entity"
)

// userClient adapts the User service wire format to composite entities.
type userClient struct {
	rest *restClient
}

// NewUserClient is the constructor for the User service adapter.
func NewUserClient(cfg *config.Config) client.UserClient {
	return &userClient{
		rest: newRESTClient("user", cfg.Services.UserURL, cfg),
	}
}

// userPayload is the User service's user representation.
type userPayload struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	AvatarURL string     `json:"avatar_url"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (p *userPayload) toEntity() *entity.User {
	role := entity.Role(p.Role)
	if !role.IsValid() {
		role = entity.RoleUser
	}

	return &entity.User{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Phone:     p.Phone,
		Role:      role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// addressPayload is the User service's address representation.
type addressPayload struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postal_code"`
}

func (p *addressPayload) toEntity() *entity.Address {
	return &entity.Address{
		ID:         p.ID,
		UserID:     p.UserID,
		Country:    p.Country,
		City:       p.City,
		Street:     p.Street,
		PostalCode: p.PostalCode,
	}
}

func (c *userClient) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var payload userPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/users/"+id.String(), nil, nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

// GetUserByEmail looks up an account by exact email match. The email is
// path-escaped, not normalized; case sensitivity is the User service's call.
func (c *userClient) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var payload userPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/users/by_email/"+url.PathEscape(email), nil, nil, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *userClient) CreateUser(ctx context.Context, input *client.CreateUserInput) (*entity.User, error) {
	body := map[string]any{
		"username":   input.Username,
		"email":      input.Email,
		"full_name":  input.FullName,
		"avatar_url": input.AvatarURL,
		"phone":      input.Phone,
		"role":       input.Role.String(),
	}

	var payload userPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/users", nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *userClient) UpdateUser(ctx context.Context, id uuid.UUID, input *client.UpdateUserInput) (*entity.User, error) {
	body := map[string]any{}
	if input.Username != nil {
		body["username"] = *input.Username
	}
	if input.FullName != nil {
		body["full_name"] = *input.FullName
	}
	if input.AvatarURL != nil {
		body["avatar_url"] = *input.AvatarURL
	}
	if input.Phone != nil {
		body["phone"] = *input.Phone
	}

	var payload userPayload
	if err := c.rest.doJSON(ctx, http.MethodPatch, "/users/"+id.String(), nil, body, &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *userClient) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var payloads []userPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/users", nil, nil, &payloads); err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(payloads))
	for i := range payloads {
		users[i] = payloads[i].toEntity()
	}

	return users, nil
}

func (c *userClient) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	query := url.Values{}
	query.Set("user_id", userID.String())

	var payloads []addressPayload
	if err := c.rest.doJSON(ctx, http.MethodGet, "/addresses", query, nil, &payloads); err != nil {
		return nil, err
	}

	addresses := make([]*entity.Address, len(payloads))
	for i := range payloads {
		addresses[i] = payloads[i].toEntity()
	}

	return addresses, nil
}

func (c *userClient) CreateAddress(ctx context.Context, input *client.UpsertAddressInput) (*entity.Address, error) {
	var payload addressPayload
	if err := c.rest.doJSON(ctx, http.MethodPost, "/addresses", nil, addressBody(input), &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func (c *userClient) UpdateAddress(ctx context.Context, id uuid.UUID, input *client.UpsertAddressInput) (*entity.Address, error) {
	var payload addressPayload
	if err := c.rest.doJSON(ctx, http.MethodPut, "/addresses/"+id.String(), nil, addressBody(input), &payload); err != nil {
		return nil, err
	}

	return payload.toEntity(), nil
}

func addressBody(input *client.UpsertAddressInput) map[string]any {
	return map[string]any{
		"user_id":     input.UserID.String(),
		"country":     input.Country,
		"city":        input.City,
		"street":      input.Street,
		"postal_code": input.PostalCode,
	}
}
