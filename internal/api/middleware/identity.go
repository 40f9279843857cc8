package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/ports"
)

// ActiveUser loads the token's user from the store and rejects the request
// when the account no longer exists or has been deactivated. On success the
// caller's role id is added to context for downstream handlers.
func ActiveUser(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || !user.Active {
				return echo.NewHTTPError(http.StatusUnauthorized, "account unavailable")
			}

			c.Set("role_id", user.RoleID)

			return next(c)
		}
	}
}
