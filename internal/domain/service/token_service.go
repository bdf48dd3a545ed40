// Package service defines the interfaces for domain services whose concrete
// implementations live under internal/infra.
package service

import (
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// Claims holds the verified content of a session token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for issuing and validating session
// tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed access token for a given user.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks the validity of a token string. Any invalid,
	// expired or malformed token yields the same error so callers cannot
	// distinguish the causes.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
