package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. Presence proves the middleware ran; an empty id means the route
// was wired without it and the request must not proceed.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// requestMetadata collects the client fingerprint recorded with every login
// attempt. Geo is supplied by the edge proxy when available.
func requestMetadata(c echo.Context) domain.RequestMetadata {
	req := c.Request()
	return domain.RequestMetadata{
		IP:        c.RealIP(),
		Geo:       req.Header.Get("X-Geo"),
		UserAgent: req.UserAgent(),
		Language:  req.Header.Get("Accept-Language"),
	}
}
