package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// MenuHandler handles HTTP requests for menu and menu item administration.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

type capabilitiesRequest struct {
	Create     bool `json:"create"`
	Read       bool `json:"read"`
	Update     bool `json:"update"`
	Delete     bool `json:"delete"`
	Activate   bool `json:"activate"`
	Inactivate bool `json:"inactivate"`
	FullAccess bool `json:"full_access"`
}

func (r capabilitiesRequest) toDomain() domain.Capabilities {
	return domain.Capabilities{
		Create:     r.Create,
		Read:       r.Read,
		Update:     r.Update,
		Delete:     r.Delete,
		Activate:   r.Activate,
		Inactivate: r.Inactivate,
		FullAccess: r.FullAccess,
	}
}

type menuRequest struct {
	Name    string   `json:"name" validate:"required"`
	Icon    string   `json:"icon"`
	Order   int      `json:"order"`
	RoleIDs []string `json:"role_ids"`
}

type menuResponse struct {
	ID        string    `json:"id"`
	Active    bool      `json:"active"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Order     int       `json:"order"`
	RoleIDs   []string  `json:"role_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMenuResponse(m *domain.Menu) menuResponse {
	return menuResponse{
		ID:        m.ID,
		Active:    m.Active,
		Name:      m.Name,
		Icon:      m.Icon,
		Order:     m.Order,
		RoleIDs:   m.RoleIDs,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type menuItemRequest struct {
	Name         string              `json:"name" validate:"required"`
	Icon         string              `json:"icon"`
	Order        int                 `json:"order"`
	MenuID       string              `json:"menu_id" validate:"required"`
	ModuleID     string              `json:"module_id"`
	RoleIDs      []string            `json:"role_ids"`
	Capabilities capabilitiesRequest `json:"capabilities"`
}

func (r *menuItemRequest) toInput() ports.MenuItemInput {
	return ports.MenuItemInput{
		Name:         r.Name,
		Icon:         r.Icon,
		Order:        r.Order,
		MenuID:       r.MenuID,
		ModuleID:     r.ModuleID,
		RoleIDs:      r.RoleIDs,
		Capabilities: r.Capabilities.toDomain(),
	}
}

type menuItemResponse struct {
	ID           string              `json:"id"`
	Active       bool                `json:"active"`
	Name         string              `json:"name"`
	Icon         string              `json:"icon,omitempty"`
	Order        int                 `json:"order"`
	MenuID       string              `json:"menu_id"`
	ModuleID     string              `json:"module_id,omitempty"`
	RoleIDs      []string            `json:"role_ids"`
	Capabilities domain.Capabilities `json:"capabilities"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func toMenuItemResponse(i *domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:           i.ID,
		Active:       i.Active,
		Name:         i.Name,
		Icon:         i.Icon,
		Order:        i.Order,
		MenuID:       i.MenuID,
		ModuleID:     i.ModuleID,
		RoleIDs:      i.RoleIDs,
		Capabilities: i.Capabilities,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// Get handles GET /v1/menus/:id.
//
// @Summary      Get a menu
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu id"
// @Success      200  {object}  menuResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/menus/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	menu, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuResponse(menu))
}

// List handles GET /v1/menus.
//
// @Summary      List menus
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pageResponse
// @Router       /v1/menus [get]
func (h *MenuHandler) List(c echo.Context) error {
	menus, total, err := h.service.List(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}

	items := make([]menuResponse, 0, len(menus))
	for _, m := range menus {
		items = append(items, toMenuResponse(m))
	}
	return c.JSON(http.StatusOK, pageResponse{Items: items, TotalCount: total})
}

// Create handles POST /v1/menus.
//
// @Summary      Create a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      menuRequest  true  "Menu"
// @Success      201      {object}  menuResponse
// @Failure      400      {object}  errorResponse
// @Router       /v1/menus [post]
func (h *MenuHandler) Create(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	menu, err := h.service.Create(c.Request().Context(), actorID, ports.MenuInput{
		Name:    req.Name,
		Icon:    req.Icon,
		Order:   req.Order,
		RoleIDs: req.RoleIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMenuResponse(menu))
}

// Update handles PUT /v1/menus/:id.
//
// @Summary      Update a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string       true  "Menu id"
// @Param        request  body      menuRequest  true  "Menu"
// @Success      200      {object}  menuResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/menus/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	menu, err := h.service.Update(c.Request().Context(), actorID, c.Param("id"), ports.MenuInput{
		Name:    req.Name,
		Icon:    req.Icon,
		Order:   req.Order,
		RoleIDs: req.RoleIDs,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuResponse(menu))
}

// ChangeActive handles PATCH /v1/menus/:id/active.
//
// @Summary      Activate or deactivate a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Menu id"
// @Param        request  body      changeActiveRequest  true  "Target state"
// @Success      200      {object}  statusResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/menus/{id}/active [patch]
func (h *MenuHandler) ChangeActive(c echo.Context) error {
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

// Delete handles DELETE /v1/menus/:id.
//
// @Summary      Delete a menu
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/menus/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}

// GetItem handles GET /v1/menu-items/:id.
//
// @Summary      Get a menu item
// @Tags         menu-items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  menuItemResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/menu-items/{id} [get]
func (h *MenuHandler) GetItem(c echo.Context) error {
	item, err := h.service.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// ListItems handles GET /v1/menus/:id/items.
//
// @Summary      List items belonging to a menu
// @Tags         menu-items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu id"
// @Success      200  {object}  pageResponse
// @Router       /v1/menus/{id}/items [get]
func (h *MenuHandler) ListItems(c echo.Context) error {
	list, total, err := h.service.ListItems(c.Request().Context(), c.Param("id"), listFilter(c))
	if err != nil {
		return err
	}

	items := make([]menuItemResponse, 0, len(list))
	for _, i := range list {
		items = append(items, toMenuItemResponse(i))
	}
	return c.JSON(http.StatusOK, pageResponse{Items: items, TotalCount: total})
}

// CreateItem handles POST /v1/menu-items.
//
// @Summary      Create a menu item
// @Tags         menu-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      menuItemRequest  true  "Menu item"
// @Success      201      {object}  menuItemResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/menu-items [post]
func (h *MenuHandler) CreateItem(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateItem(c.Request().Context(), actorID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMenuItemResponse(item))
}

// UpdateItem handles PUT /v1/menu-items/:id.
//
// @Summary      Update a menu item
// @Tags         menu-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string           true  "Menu item id"
// @Param        request  body      menuItemRequest  true  "Menu item"
// @Success      200      {object}  menuItemResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/menu-items/{id} [put]
func (h *MenuHandler) UpdateItem(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req menuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.UpdateItem(c.Request().Context(), actorID, c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponse(item))
}

// ChangeItemActive handles PATCH /v1/menu-items/:id/active.
//
// @Summary      Activate or deactivate a menu item
// @Tags         menu-items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string               true  "Menu item id"
// @Param        request  body      changeActiveRequest  true  "Target state"
// @Success      200      {object}  statusResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/menu-items/{id}/active [patch]
func (h *MenuHandler) ChangeItemActive(c echo.Context) error {
	actorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req changeActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.service.ChangeItemActive(c.Request().Context(), actorID, c.Param("id"), req.Active); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "updated"})
}

// DeleteItem handles DELETE /v1/menu-items/:id.
//
// @Summary      Delete a menu item
// @Tags         menu-items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu item id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/menu-items/{id} [delete]
func (h *MenuHandler) DeleteItem(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	if err := h.service.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deleted"})
}
