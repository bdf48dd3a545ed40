// Package entity contains the core business objects of the project,
// each representing a view composed from the backend services. The gateway
// owns none of them durably; every value is rebuilt per request.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity view sourced from the User service.
type User struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	Role      Role       `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Profile is a User merged with at most one Address (the first in listing
// order). Address is nil when the user has none or the address backend
// could not be reached.
type Profile struct {
	User    *User    `json:"user"`
	Address *Address `json:"address,omitempty"`
}
