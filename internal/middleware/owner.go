package middleware

import (
	"strings"

	"money-tracker/internal/errors"
	"money-tracker/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OwnerHeader carries the id of the owner whose transactions a request reads
// or writes. Authentication happens upstream of this service.
const OwnerHeader = "X-User-ID"

// OwnerFromHeader requires a valid owner id in the X-User-ID header and stores
// it in the context under handlers.OwnerContextKey.
func OwnerFromHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(OwnerHeader))
			if raw == "" {
				return handlers.SendError(c, errors.OwnerMissing)
			}

			ownerID, err := uuid.Parse(raw)
			if err != nil || ownerID == uuid.Nil {
				return handlers.SendError(c, errors.OwnerInvalidID)
			}

			c.Set(handlers.OwnerContextKey, ownerID)
			return next(c)
		}
	}
}
