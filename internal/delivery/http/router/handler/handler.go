// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// currentUser reads the verified identity the auth middleware stored on the
// context. ok is false when the route was not authenticated.
func currentUser(c echo.Context) (uuid.UUID, entity.Role, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}

	role, ok := c.Get(middleware.ContextKeyRole).(entity.Role)
	if !ok {
		return uuid.Nil, "", false
	}

	return userID, role, true
}

// unauthenticated is the uniform reply for a missing identity on a route
// that should have been authenticated.
func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHORIZED", "invalid or expired token")
}
