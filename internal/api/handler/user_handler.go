package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user administration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type userRequest struct {
	Name           string     `json:"name"`
	LastName       string     `json:"last_name"`
	Username       string     `json:"username"`
	Password       string     `json:"password"`
	DocumentNumber string     `json:"document_number"`
	Birthdate      *time.Time `json:"birthdate"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email" validate:"omitempty,email"`
	ProfilePhoto   string     `json:"profile_photo"`
	RoleID         string     `json:"role_id"`
}

func (r *userRequest) toInput() ports.UserInput {
	return ports.UserInput{
		Name:           r.Name,
		LastName:       r.LastName,
		Username:       r.Username,
		Password:       r.Password,
		DocumentNumber: r.DocumentNumber,
		Birthdate:      r.Birthdate,
		Phone:          r.Phone,
		Email:          r.Email,
		ProfilePhoto:   r.ProfilePhoto,
		RoleID:         r.RoleID,
	}
}

type userResponse struct {
	ID             string     `json:"id"`
	Active         bool       `json:"active"`
	Name           string     `json:"name"`
	LastName       string     `json:"last_name"`
	Username       string     `json:"username"`
	DocumentNumber string     `json:"document_number,omitempty"`
	Birthdate      *time.Time `json:"birthdate,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	ProfilePhoto   string     `json:"profile_photo,omitempty"`
	RoleID         string     `json:"role_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID,
		Active:         u.Active,
		Name:           u.Name,
		LastName:       u.LastName,
		Username:       u.Username,
		DocumentNumber: u.DocumentNumber,
		Birthdate:      u.Birthdate,
		Phone:          u.Phone,
		Email:          u.Email,
		ProfilePhoto:   u.ProfilePhoto,
		RoleID:         u.RoleID,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /v1/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        all            query     bool  false  "Include inactive users"
// @Param        order_created  query     bool  false  "Newest first"
// @Param        limit          query     int   false  "Page size (max 100)"
// @Param        offset         query     int   false  "Rows to skip"
// @Success      200  {object}  pageResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, total, err := h.service.List(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}

	items := make([]userResponse, 0, len(users))
	for _, u := range users {
		items = append(items, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, pageResponse{Items: items, TotalCount: total})
}

// Create handles POST /v1/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      userRequest  true  "User"
// @Success      201      {object}  userResponse
// @Failure      400      {object}  errorResponse
// @Failure      409      {object}  errorResponse
// @Router       /v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), actorID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /v1/users/:id.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string       true  "User id"
// @Param        request  body      userRequest  true  "User"
// @Success      200      {object}  userResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

type changeActiveRequest struct {
	Active bool `json:"active"`
}

// ChangeActive handles PATCH /v1/users/:id/active.
//
// @Summary      Activate or deactivate a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "User id"
// @Param        request  body      changeActiveRequest  true  "Target state"
// @Success      200      {object}  statusResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/users/{id}/active [patch]
func (h *UserHandler) ChangeActive(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changeActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ChangeActive(c.Request().Context(), actorID, c.Param("id"), req.Active); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "updated"})
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ChangePassword handles PATCH /v1/users/:id/password.
//
// @Summary      Set a new password for a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "User id"
// @Param        request  body      changePasswordRequest  true  "New password"
// @Success      200      {object}  statusResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/users/{id}/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.ChangePassword(c.Request().Context(), actorID, c.Param("id"), req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "updated"})
}

// ResetPassword handles POST /v1/users/:id/reset-password.
//
// @Summary      Reset a user's password to their document number
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.ResetPassword(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "reset"})
}

// Delete handles DELETE /v1/users/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

type documentAvailableResponse struct {
	Available bool `json:"available"`
}

// DocumentAvailable handles GET /v1/users/document-available/:number.
//
// @Summary      Check whether a document number is unregistered
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      string  true  "Document number"
// @Success      200     {object}  documentAvailableResponse
// @Router       /v1/users/document-available/{number} [get]
func (h *UserHandler) DocumentAvailable(c echo.Context) error {
	available, err := h.service.DocumentNumberAvailable(c.Request().Context(), c.Param("number"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, documentAvailableResponse{Available: available})
}
