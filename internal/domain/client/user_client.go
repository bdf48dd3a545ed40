package client

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// CreateUserInput carries the fields the User service needs to provision
// an account.
type CreateUserInput struct {
	Username  string
	Email     string
	FullName  string
	AvatarURL string
	Phone     string
	Role      entity.Role
}

// UpdateUserInput carries a partial user update; nil fields are untouched.
type UpdateUserInput struct {
	Username  *string
	FullName  *string
	AvatarURL *string
	Phone     *string
}

// UpsertAddressInput carries the fields for creating or replacing an address.
type UpsertAddressInput struct {
	UserID     uuid.UUID
	Country    string
	City       string
	Street     string
	PostalCode string
}

// UserClient wraps the User service endpoints the gateway depends on.
type UserClient interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)

	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, input *UpsertAddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, input *UpsertAddressInput) (*entity.Address, error)
}
