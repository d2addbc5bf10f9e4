package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OwnerContextKey is where middleware.OwnerFromHeader stores the caller's id
const OwnerContextKey = "user_id"

// ErrOwnerMissing is returned when the owner context is invalid
var ErrOwnerMissing = fmt.Errorf("owner missing")

// Helper function to extract the owner ID from context
// Returns ErrOwnerMissing if the owner ID is missing or invalid
func getOwnerIDFromContext(c echo.Context) (uuid.UUID, error) {
	ownerIDValue := c.Get(OwnerContextKey)
	if ownerIDValue == nil {
		return uuid.UUID{}, ErrOwnerMissing
	}

	ownerID, ok := ownerIDValue.(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.UUID{}, ErrOwnerMissing
	}

	return ownerID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
