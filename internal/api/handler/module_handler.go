package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// ModuleHandler handles HTTP requests for module administration.
type ModuleHandler struct {
	service ports.ModuleService
}

func NewModuleHandler(service ports.ModuleService) *ModuleHandler {
	return &ModuleHandler{service: service}
}

type moduleRequest struct {
	Name string `json:"name" validate:"required"`
	Path string `json:"path" validate:"required"`
}

type moduleResponse struct {
	ID        string    `json:"id"`
	Active    bool      `json:"active"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toModuleResponse(m *domain.Module) moduleResponse {
	return moduleResponse{
		ID:        m.ID,
		Active:    m.Active,
		Name:      m.Name,
		Path:      m.Path,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Get handles GET /v1/modules/:id.
//
// @Summary      Get a module
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Module id"
// @Success      200  {object}  moduleResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/modules/{id} [get]
func (h *ModuleHandler) Get(c echo.Context) error {
	module, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toModuleResponse(module))
}

// List handles GET /v1/modules.
//
// @Summary      List modules
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pageResponse
// @Router       /v1/modules [get]
func (h *ModuleHandler) List(c echo.Context) error {
	modules, total, err := h.service.List(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}

	items := make([]moduleResponse, 0, len(modules))
	for _, m := range modules {
		items = append(items, toModuleResponse(m))
	}
	return c.JSON(http.StatusOK, pageResponse{Items: items, TotalCount: total})
}

// Create handles POST /v1/modules.
//
// @Summary      Create a module
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      moduleRequest  true  "Module"
// @Success      201      {object}  moduleResponse
// @Failure      400      {object}  errorResponse
// @Router       /v1/modules [post]
func (h *ModuleHandler) Create(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req moduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	module, err := h.service.Create(c.Request().Context(), actorID, ports.ModuleInput{Name: req.Name, Path: req.Path})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toModuleResponse(module))
}

// Update handles PUT /v1/modules/:id.
//
// @Summary      Update a module
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string         true  "Module id"
// @Param        request  body      moduleRequest  true  "Module"
// @Success      200      {object}  moduleResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/modules/{id} [put]
func (h *ModuleHandler) Update(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req moduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	module, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.ModuleInput{Name: req.Name, Path: req.Path})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toModuleResponse(module))
}

// ChangeActive handles PATCH /v1/modules/:id/active.
//
// @Summary      Activate or deactivate a module
// @Tags         modules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Module id"
// @Param        request  body      changeActiveRequest  true  "Target state"
// @Success      200      {object}  statusResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/modules/{id}/active [patch]
func (h *ModuleHandler) ChangeActive(c echo.Context) error {
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

// Delete handles DELETE /v1/modules/:id.
//
// @Summary      Delete a module
// @Tags         modules
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Module id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/modules/{id} [delete]
func (h *ModuleHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}
