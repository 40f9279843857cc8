package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/ports"
)

// AuthHandler handles login and session-check requests.
type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /v1/auth/login.
//
// A rejected credential pair still answers 200 with an empty session payload,
// so the response shape never reveals whether the username exists.
//
// @Summary      Authenticate and build a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      loginRequest  true  "Credentials"
// @Success      200      {object}  ports.SessionPayload
// @Failure      400      {object}  errorResponse
// @Failure      429      {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payload, err := h.sessions.Login(c.Request().Context(), ports.LoginInput{
		Username: req.Username,
		Password: req.Password,
		Metadata: requestMetadata(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}

// Me handles GET /v1/auth/me.
//
// @Summary      Rebuild the caller's session from their token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SessionPayload
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	payload, err := h.sessions.CurrentSession(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payload)
}
