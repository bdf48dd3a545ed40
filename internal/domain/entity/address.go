// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Address is a postal address owned by a user, sourced from the User service.
type Address struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Country    string    `json:"country"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postal_code,omitempty"`
}
