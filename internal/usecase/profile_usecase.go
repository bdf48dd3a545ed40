package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// AddressInput carries the single address attached to a profile.
type AddressInput struct {
	Country    string `json:"country" validate:"required"`
	City       string `json:"city" validate:"required"`
	Street     string `json:"street" validate:"required"`
	PostalCode string `json:"postal_code"`
}

// UpdateProfileInput carries a partial profile update; nil fields are untouched.
type UpdateProfileInput struct {
	Username  *string       `json:"username"`
	FullName  *string       `json:"full_name"`
	AvatarURL *string       `json:"avatar_url"`
	Phone     *string       `json:"phone"`
	Address   *AddressInput `json:"address"`
}

// ProfileUsecase composes user identity with the user's address.
type ProfileUsecase interface {
	// GetProfile returns the user merged with their first address. A failing
	// address fetch degrades to a profile without address; a failing user
	// fetch fails the whole operation.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// UpdateProfile applies a partial update to the user and upserts the
	// attached address when one is supplied.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Profile, error)

	// ListUsers returns the full account directory. A failing backend call
	// fails the whole listing; no silent empty result.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
