// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// LoginInput carries the federated identity asserted by the client.
type LoginInput struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required"`
	FullName       string `json:"full_name"`
	AvatarURL      string `json:"avatar_url"`
	FederatedToken string `json:"federated_token" validate:"required"`
}

// LoginOutput is the issued session.
type LoginOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
}

// SessionUsecase issues sessions for federated identities. An unknown email
// provisions a fresh account before the token is issued.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
