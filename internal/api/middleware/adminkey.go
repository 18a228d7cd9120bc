package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminKeyHeader carries the shared admin key on admin endpoints.
const AdminKeyHeader = "X-Admin-Key"

// AdminKey gates admin endpoints behind a shared key header.
func AdminKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(AdminKeyHeader)
			if provided == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing admin key")
			}
			if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				return echo.NewHTTPError(http.StatusForbidden, "invalid admin key")
			}
			return next(c)
		}
	}
}
